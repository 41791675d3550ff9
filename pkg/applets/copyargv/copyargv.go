// Package copyargv implements the copyargv command, which takes the copy
// job as positional arguments.
package copyargv

import (
	"github.com/rcarmo/go-linecopy/pkg/core"
	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

const usage = `usage: copyargv [-a] INPUT RESULT COUNT

Copy the first COUNT lines of INPUT to RESULT.

	-a	append to RESULT instead of truncating it
`

// Run executes the copyargv command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	if core.HasHelp(args) {
		stdio.Print(usage)
		return core.ExitSuccess
	}

	appendMode := false
	operands, code := core.ParseBoolFlags(stdio, "copyargv", args, map[byte]*bool{
		'a': &appendMode,
	})
	if code != core.ExitSuccess {
		return code
	}

	switch {
	case len(operands) < 3:
		return core.UsageError(stdio, "copyargv", "missing operand")
	case len(operands) > 3:
		return core.UsageError(stdio, "copyargv", "extra operand '"+operands[3]+"'")
	}

	lines, code := core.ParseCount(stdio, "copyargv", operands[2])
	if code != core.ExitSuccess {
		return code
	}

	job := linecopy.Job{
		Source:      operands[0],
		Destination: operands[1],
		Lines:       lines,
	}
	if appendMode {
		job.Mode = linecopy.Append
	}
	return core.RunCopy(stdio, "copyargv", job)
}
