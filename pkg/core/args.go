// args.go provides shared argument parsing for the copy applets.
package core

import (
	"strconv"
	"strings"
)

// HasHelp reports whether args request help with -h or --help.
// Tokens after a "--" terminator are operands and do not count.
func HasHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// ParseBoolFlags parses short boolean flags (e.g., -abc) and returns remaining args.
func ParseBoolFlags(stdio *Stdio, applet string, args []string, flags map[byte]*bool) ([]string, int) {
	var operands []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			operands = append(operands, args[i+1:]...)
			break
		}
		if len(arg) > 1 && arg[0] == '-' && !isNumber(arg) {
			for _, c := range arg[1:] {
				target, ok := flags[byte(c)]
				if !ok {
					return nil, UsageError(stdio, applet, "invalid option -- '"+string(c)+"'")
				}
				if target != nil {
					*target = true
				}
			}
		} else {
			operands = append(operands, arg)
		}
	}
	return operands, ExitSuccess
}

// ParseCount parses a non-negative line count operand.
func ParseCount(stdio *Stdio, applet, s string) (int, int) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, UsageError(stdio, applet, "invalid number: "+s)
	}
	if n < 0 {
		return 0, UsageError(stdio, applet, "invalid number: "+s)
	}
	return n, ExitSuccess
}

func isNumber(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}
