package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, &Config{
		ExamplesDir: "examples",
		Prefix:      "test_",
		Cargo:       "cargo",
		Profile:     "release",
		Features:    "embedded-hal",
		Target:      "thumbv7m-none-eabi",
	}, cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "override.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, &Config{
		ExamplesDir: "integration",
		Prefix:      "test_",
		Cargo:       "cargo",
		Profile:     "release",
		Features:    "embedded-hal,extended",
		Target:      "thumbv7em-none-eabihf",
	}, cfg)
}

func TestLoadMissingOptionalFile(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYaml(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	assert.Error(t, err)
}
