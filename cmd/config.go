package cmd

import (
	"github.com/spf13/cobra"
	"github.com/systick-timebase/qemutest/pkg/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  executeConfig,
}

func executeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	cmd.Print(string(out))
	return nil
}

func init() {
	RootCmd.AddCommand(configCmd)
}
