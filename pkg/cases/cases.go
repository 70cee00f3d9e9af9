package cases

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rodaine/table"
)

// Case is a single emulated hardware test: a buildable example whose
// filename starts with the test prefix.
type Case struct {
	Name string // the identifier passed to the toolchain, extension stripped
	File string // the filename as found in the examples directory
}

type casesSlice []Case

// Discovers the test cases in the given examples directory.
// Subdirectories and entries without the prefix are skipped, and the
// result is sorted by name so runs are reproducible across filesystems.
func Discover(dir, prefix string) (casesSlice, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	cases := casesSlice{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		cases = append(cases, Case{Name: name, File: entry.Name()})
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}

func (cases casesSlice) Table() table.Table {
	tbl := table.New("Case", "File")
	for _, c := range cases {
		tbl.AddRow(c.Name, c.File)
	}
	return tbl
}
