package errors

import "fmt"

const (
	ExitCodeWarn            = 10
	ExitCodeValidationError = 30
)

// CmdError carries an exit code along with the cause so main can map
// command failures to distinct process exit statuses.
type CmdError struct {
	Cause error
	Code  int
}

func (e *CmdError) Error() string { return e.Cause.Error() }

func NewCmdError(cause error, code int) *CmdError {
	return &CmdError{
		Cause: cause,
		Code:  code,
	}
}

func NewValidationErrorf(format string, args ...any) *CmdError {
	return NewCmdError(fmt.Errorf(format, args...), ExitCodeValidationError)
}
