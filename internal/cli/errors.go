package cli

import (
	"errors"

	"github.com/lu-zhengda/portkill/internal/port"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitToolFailure  = 3
)

// usageError wraps flag and option errors so they exit like a bad port.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		invalidPort *port.InvalidPortError
		usage       *usageError
		tool        *port.ToolError
	)
	switch {
	case errors.As(err, &invalidPort), errors.As(err, &usage):
		return ExitInvalidInput
	case errors.As(err, &tool):
		return ExitToolFailure
	default:
		return ExitFailure
	}
}
