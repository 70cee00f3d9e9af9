package cmd

import (
	"github.com/spf13/cobra"
	"github.com/systick-timebase/qemutest/pkg/cases"
	"github.com/systick-timebase/qemutest/pkg/config"
)

var listCmd = &cobra.Command{
	Use:   "list [examples_dir]",
	Short: "List the discovered test cases without running them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  executeList,
}

func executeList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dir := cfg.ExamplesDir
	if len(args) == 1 {
		dir = args[0]
	}

	testCases, err := cases.Discover(dir, cfg.Prefix)
	if err != nil {
		return err
	}

	testCases.Table().Print()
	return nil
}

func init() {
	RootCmd.AddCommand(listCmd)
}
