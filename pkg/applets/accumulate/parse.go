package accumulate

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Flags recognised by Parse.
const (
	FlagSum       = "--sum"
	FlagHelpShort = "-h"
	FlagHelpLong  = "--help"
)

var (
	// ErrHelpRequested marks a Help outcome. It is not a failure.
	ErrHelpRequested = errors.New("help requested")
	// ErrInvalidFlagPlacement is returned when --sum is neither the first
	// nor the last token.
	ErrInvalidFlagPlacement = errors.New("invalid injection of --sum")
	// ErrEmptyMax is returned when the maximum of no integers is requested.
	ErrEmptyMax = errors.New("max() arg is an empty sequence")
)

// InvalidLiteralError reports a token that is not a base-10 integer.
type InvalidLiteralError struct {
	Token string
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal for int() with base 10: '%s'", e.Token)
}

// Aggregator selects how the parsed integers are combined.
type Aggregator int

const (
	Max Aggregator = iota
	Sum
)

func (a Aggregator) String() string {
	if a == Sum {
		return "sum"
	}
	return "max"
}

// Command is a successfully parsed invocation.
type Command struct {
	Aggregator Aggregator
	Integers   []*big.Int
}

// Kind tags an Outcome.
type Kind int

const (
	KindHelp Kind = iota
	KindSuccess
	KindError
)

// Outcome is the result of Parse. Command is set for KindSuccess and Err for
// KindHelp (ErrHelpRequested) and KindError.
type Outcome struct {
	Kind    Kind
	Command Command
	Err     error
}

// Parse classifies args (program name excluded) in a single pass.
//
// -h or --help anywhere wins over every other check. Otherwise --sum selects
// Sum and must be the first or last token; without it the aggregator is Max.
// Every remaining token must be an integer literal and the first one that is
// not ends parsing. Only the first --sum is treated as the flag.
func Parse(args []string) Outcome {
	sumAt := -1
	for i, arg := range args {
		switch arg {
		case FlagHelpShort, FlagHelpLong:
			return Outcome{Kind: KindHelp, Err: ErrHelpRequested}
		case FlagSum:
			if sumAt < 0 {
				sumAt = i
			}
		}
	}

	cmd := Command{Aggregator: Max, Integers: make([]*big.Int, 0, len(args))}
	if sumAt >= 0 {
		if sumAt != 0 && sumAt != len(args)-1 {
			return Outcome{Kind: KindError, Err: ErrInvalidFlagPlacement}
		}
		cmd.Aggregator = Sum
	}

	for i, arg := range args {
		if i == sumAt {
			continue
		}
		n, ok := parseInt(arg)
		if !ok {
			return Outcome{Kind: KindError, Err: &InvalidLiteralError{Token: arg}}
		}
		cmd.Integers = append(cmd.Integers, n)
	}
	return Outcome{Kind: KindSuccess, Command: cmd}
}

// parseInt accepts surrounding whitespace, an optional sign and single
// underscores between digits. Only ASCII digits are accepted. Precision is
// unbounded.
func parseInt(token string) (*big.Int, bool) {
	s := strings.TrimSpace(token)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, false
	}

	var digits strings.Builder
	digits.Grow(len(s))
	prevDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			prevDigit = true
		case c == '_' && prevDigit && i+1 < len(s):
			prevDigit = false
		default:
			return nil, false
		}
	}
	if !prevDigit {
		return nil, false
	}

	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}
