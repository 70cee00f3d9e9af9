package runner

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"github.com/systick-timebase/qemutest/pkg/cases"
	"github.com/systick-timebase/qemutest/pkg/config"
	"github.com/systick-timebase/qemutest/pkg/report"
)

// Executor runs a single command to completion.
type Executor interface {
	Run(cmd Command) error
}

// ExecExecutor runs commands as child processes with inherited streams,
// so the toolchain's build and emulator output goes straight to the console.
type ExecExecutor struct{}

func (ExecExecutor) Run(cmd Command) error {
	child := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	return child.Run()
}

// NopExecutor always succeeds without running anything, for dry runs.
type NopExecutor struct{}

func (NopExecutor) Run(cmd Command) error {
	return nil
}

// Runner executes test cases sequentially with the configured toolchain.
type Runner struct {
	Config   *config.Config
	Executor Executor
	Logger   zerolog.Logger
}

func New(cfg *config.Config, executor Executor, logger zerolog.Logger) *Runner {
	return &Runner{
		Config:   cfg,
		Executor: executor,
		Logger:   logger,
	}
}

// Runs the toolchain once per case, in order. Each command is echoed before
// it is executed. The first failing invocation aborts the run, and pending
// cases are not started. The returned results cover only the cases that
// were actually executed.
func (r *Runner) Run(testCases []cases.Case) (report.Results, error) {
	results := report.Results{}
	for _, tc := range testCases {
		cmd := BuildCommand(r.Config, tc.Name)
		r.Logger.Info().Str("case", tc.Name).Msgf("running `%s`", cmd.Display)

		start := time.Now()
		err := r.Executor.Run(cmd)
		elapsed := time.Since(start)

		results = append(results, report.Result{Case: tc.Name, Duration: elapsed, Err: err})
		r.Logger.Debug().Str("case", tc.Name).Dur("duration", elapsed).Msg("Case finished")

		if err != nil {
			return results, fmt.Errorf("case %s: %w", tc.Name, err)
		}
	}

	return results, nil
}
