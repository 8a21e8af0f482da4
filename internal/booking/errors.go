package booking

import (
	"errors"
	"fmt"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrNoFlights reports a search that matched nothing. It is a normal outcome.
var ErrNoFlights = errors.New("no flights found")

// StatusError carries an upstream response that was not accepted, with the
// body kept verbatim for the operator.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.StatusCode)
}

func (e *StatusError) ExitCode() int { return ExitFailure }

// UsageError is a command line the tool refuses to act on.
type UsageError struct {
	Err error
}

func Usage(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (e *UsageError) ExitCode() int { return ExitUsage }
