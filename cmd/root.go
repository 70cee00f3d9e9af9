package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool
var configPath string

var RootCmd = &cobra.Command{
	Use:   "qemutest",
	Short: "Run the crate's emulated hardware test cases under QEMU",
	Long: "Run the crate's on-hardware test cases, which are cargo examples " +
		"built for an emulated Cortex-M target.\n" +
		"Every file in the examples directory whose name starts with test_ is treated as a test case.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a qemutest.yaml config file")
}
