package runner

import (
	"fmt"
	"strings"

	"github.com/systick-timebase/qemutest/pkg/config"
)

// Command is a single toolchain invocation. Display is the command line as
// echoed to the user, and Argv is the same command with the shell quoting
// resolved, ready to be executed directly.
type Command struct {
	Display string
	Argv    []string
}

// Builds the toolchain invocation for a single test case identifier.
func BuildCommand(cfg *config.Config, name string) Command {
	display := fmt.Sprintf("%s run --example %s --%s --features=%q --target %s",
		cfg.Cargo, name, cfg.Profile, cfg.Features, cfg.Target)
	return Command{Display: display, Argv: splitCommand(display)}
}

// Splits a command line into argv, resolving single and double quotes the
// way a POSIX shell splits simple words.
func splitCommand(line string) []string {
	var argv []string
	var word strings.Builder
	var quote rune
	inWord := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				argv = append(argv, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}

	if inWord {
		argv = append(argv, word.String())
	}
	return argv
}
