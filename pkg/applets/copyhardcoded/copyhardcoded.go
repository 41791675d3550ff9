// Package copyhardcoded implements the copyhardcoded command, which copies
// the first 10 lines of data/input.txt into result/result.txt.
package copyhardcoded

import (
	"github.com/rcarmo/go-linecopy/pkg/core"
	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

// Run executes the copyhardcoded command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	if core.HasHelp(args) {
		stdio.Printf("usage: copyhardcoded\n\nCopy the first %d lines of %s to %s.\n",
			linecopy.DefaultLines, linecopy.DefaultSource, linecopy.DefaultDestination)
		return core.ExitSuccess
	}
	if len(args) > 0 {
		return core.UsageError(stdio, "copyhardcoded", "extra operand '"+args[0]+"'")
	}
	return core.RunCopy(stdio, "copyhardcoded", linecopy.DefaultJob())
}
