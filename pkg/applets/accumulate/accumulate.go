// Package accumulate implements the accumulate command, which prints the
// maximum or the sum of its integer arguments.
package accumulate

import (
	"github.com/rcarmo/go-linecopy/pkg/core"
)

const usage = `usage: %s [-h] [--sum] N [N ...]

Process some integers.

positional arguments:
 N           an integer for the accumulator

optional arguments:
 -h, --help  show this help message and exit
 --sum       sum the integers (default: find the max)
`

// Run executes the accumulate command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	log := stdio.Logger()

	outcome := Parse(args)
	switch outcome.Kind {
	case KindHelp:
		name := stdio.Name
		if name == "" {
			name = "accumulate"
		}
		stdio.Printf(usage, name)
		stdio.Println()
		return core.ExitSuccess
	case KindError:
		stdio.Errorf("%v\n", outcome.Err)
		return core.ExitFailure
	}

	cmd := outcome.Command
	log.Debug("parsed arguments", "aggregator", cmd.Aggregator, "count", len(cmd.Integers))

	result, err := cmd.Aggregate()
	if err != nil {
		stdio.Errorf("%v\n", err)
		return core.ExitFailure
	}
	stdio.Println(result.String())
	return core.ExitSuccess
}
