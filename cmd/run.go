package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/systick-timebase/qemutest/pkg/cases"
	"github.com/systick-timebase/qemutest/pkg/config"
	"github.com/systick-timebase/qemutest/pkg/runner"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run [examples_dir]",
	Short: "Run every test case in the examples directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  executeRun,
}

func executeRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dir := cfg.ExamplesDir
	if len(args) == 1 {
		dir = args[0]
	}
	log.Debug().
		Str("dir", dir).
		Str("target", cfg.Target).
		Str("features", cfg.Features).
		Msg("Resolved configuration")

	testCases, err := cases.Discover(dir, cfg.Prefix)
	if err != nil {
		return err
	}

	var executor runner.Executor = runner.ExecExecutor{}
	if dryRun {
		executor = runner.NopExecutor{}
	}

	results, err := runner.New(cfg, executor, log.Logger).Run(testCases)
	if len(results) > 0 && !dryRun {
		results.Table().Print()
	}
	return err
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the commands without executing them")
	RootCmd.AddCommand(runCmd)
}
