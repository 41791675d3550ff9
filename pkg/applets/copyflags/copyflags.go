// Package copyflags implements the copyflags command, an argparse-style
// front end to the line copier.
package copyflags

import (
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/rcarmo/go-linecopy/pkg/core"
	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

const applet = "copyflags"

const synopsis = "usage: copyflags [-h] [-a] input_file result_file [count_lines]\n"

const positionals = `
positional arguments:
  input_file    file to be read
  result_file   file to save result
  count_lines   Number of lines to be copied, default 10

options:
`

func newFlagSet() (*flag.FlagSet, *bool) {
	flags := flag.NewFlagSet(applet, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.BoolP("help", "h", false, "show this help message and exit")
	appendMode := flags.BoolP("append", "a", false, "append result to result_file")
	return flags, appendMode
}

// Run executes the copyflags command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	flags, appendMode := newFlagSet()

	if core.HasHelp(args) {
		stdio.Print(synopsis, positionals, flags.FlagUsages())
		return core.ExitSuccess
	}

	if err := flags.Parse(splitNumeric(args)); err != nil {
		return fail(stdio, err.Error())
	}

	operands := flags.Args()
	switch {
	case len(operands) < 2:
		missing := []string{"input_file", "result_file"}[len(operands):]
		return fail(stdio, "the following arguments are required: "+strings.Join(missing, ", "))
	case len(operands) > 3:
		return fail(stdio, "unrecognized arguments: "+strings.Join(operands[3:], " "))
	}

	job := linecopy.Job{
		Source:      operands[0],
		Destination: operands[1],
		Lines:       linecopy.DefaultLines,
	}
	if len(operands) == 3 {
		n, err := parseCount(operands[2])
		if err != nil {
			return fail(stdio, "argument count_lines: invalid int value: '"+operands[2]+"'")
		}
		job.Lines = n
	}
	if *appendMode {
		job.Mode = linecopy.Append
	}
	return core.RunCopy(stdio, applet, job)
}

// splitNumeric moves negative numbers out of the flag position so that
// "-5" reaches count_lines instead of being read as a shorthand flag.
// Every flag is boolean, so only the order of positionals matters.
func splitNumeric(args []string) []string {
	var opts, positional []string
	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(arg) > 1 && arg[0] == '-' && !isNumber(arg) {
			opts = append(opts, arg)
		} else {
			positional = append(positional, arg)
		}
	}
	return append(append(opts, "--"), positional...)
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// parseCount reads count_lines. A negative count copies nothing.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return max(n, 0), nil
}

func fail(stdio *core.Stdio, message string) int {
	stdio.Errorf("%s", synopsis)
	return core.UsageError(stdio, applet, "error: "+message)
}
