package cli

import (
	"errors"

	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown flags or invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, column, card, conversation or message lookups.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty card or message content, out of range positions.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// Reported is set once the error has been written for the user.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }
func (e *ExitCodeError) Unwrap() error { return e.Err }

// UsageError marks err as a usage mistake
func UsageError(err error) error {
	return &ExitCodeError{Code: ExitUsage, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	var coded *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &coded):
		return coded.Code
	case models.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, models.ErrEmptyContent):
		return ExitValidation
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitDataErr
	default:
		return ExitError
	}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var coded *ExitCodeError
	return errors.As(err, &coded) && coded.Reported
}
