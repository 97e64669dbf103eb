package errors

import "errors"

// Exit codes returned by the jproj binary.
const (
	ExitSuccess = 0

	// ExitGeneralError also covers entry files that could not be written.
	ExitGeneralError = 1

	// ExitValidationError covers invalid configuration and malformed
	// override templates.
	ExitValidationError = 2

	ExitNotFound = 5

	// ExitAborted is returned when the root confirmation is declined.
	ExitAborted = 8
)

// sentinelCodes maps sentinels to exit codes, checked in order.
var sentinelCodes = []struct {
	sentinel error
	code     int
}{
	{ErrAborted, ExitAborted},
	{ErrMalformedTemplate, ExitValidationError},
	{ErrValidation, ExitValidationError},
	{ErrNotFound, ExitNotFound},
}

// ExitError carries the exit code for an error up to main.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already wrote the error to stderr.
	Printed bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError attaches code to err.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError returns the code of the outermost ExitError in err's
// chain, or the code of the first matching sentinel. Other errors map to
// ExitGeneralError.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.sentinel) {
			return sc.code
		}
	}
	return ExitGeneralError
}
