package cmd

import "fmt"

// Exit codes returned by the pair command.
const (
	ExitSuccess  = 0
	ExitFailed   = 1 // one or more scenarios failed
	ExitUsage    = 2
	ExitCoercion = 3 // an input could not be read as an integer
	ExitConfig   = 4 // config or scenario file could not be loaded
	ExitOutput   = 5 // the report could not be written
)

// ExitError carries a process exit code alongside the error.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError formats an error that exits with code. Use %w to keep the
// cause inspectable with errors.Is.
func NewExitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
