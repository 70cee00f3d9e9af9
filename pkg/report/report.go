package report

import (
	"time"

	"github.com/rodaine/table"
)

// Result is the outcome of one executed test case.
type Result struct {
	Case     string
	Duration time.Duration
	Err      error
}

type Results []Result

func (result Result) Status() string {
	if result.Err != nil {
		return "FAIL"
	}
	return "PASS"
}

// Builds the run summary table. It covers only the cases that were
// actually executed; cases pending after an aborted run are absent.
func (results Results) Table() table.Table {
	tbl := table.New("Case", "Status", "Duration")
	for _, result := range results {
		tbl.AddRow(result.Case, result.Status(), result.Duration.Round(time.Millisecond))
	}
	return tbl
}
