package modules

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single failure kind of every random function:
// malformed ranges, out-of-bounds sample counts, out-of-range probabilities
// and arguments of the wrong type all wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownFunction is returned by Registry.Call when no overload matches.
var ErrUnknownFunction = errors.New("unknown function")

// ArgError reports an invalid argument passed to Func.
type ArgError struct {
	Func string
	Msg  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Func, e.Msg)
}

func (e *ArgError) Unwrap() error {
	return ErrInvalidArgument
}

// Invalidf builds an *ArgError for the named function.
func Invalidf(fn, format string, args ...any) error {
	return &ArgError{Func: fn, Msg: fmt.Sprintf(format, args...)}
}
