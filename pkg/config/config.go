package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "qemutest.yaml"

// Config describes where test cases are discovered and which toolchain
// invocation runs them under the emulator.
type Config struct {
	ExamplesDir string `yaml:"examples_dir"`
	Prefix      string `yaml:"prefix"`
	Cargo       string `yaml:"cargo"`
	Profile     string `yaml:"profile"`
	Features    string `yaml:"features"`
	Target      string `yaml:"target"`
}

// Returns the stock configuration of the crate's on-hardware tests:
// cargo examples built for the Cortex-M3 profile with the embedded-hal
// feature enabled.
func Default() *Config {
	return &Config{
		ExamplesDir: "examples",
		Prefix:      "test_",
		Cargo:       "cargo",
		Profile:     "release",
		Features:    "embedded-hal",
		Target:      "thumbv7m-none-eabi",
	}
}

// Loads the config file at the given path on top of the defaults.
// An empty path means the default file name in the working directory,
// which is allowed to be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
