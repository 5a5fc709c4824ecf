package process

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lu-zhengda/portkill/internal/logging"
	"github.com/lu-zhengda/portkill/internal/port"
)

// errorPrefix is the marker taskkill puts in front of its diagnostics.
const errorPrefix = "ERROR: "

// Outcome is the result of one termination attempt.
type Outcome struct {
	PID    uint32 `json:"pid" yaml:"pid"`
	Killed bool   `json:"killed" yaml:"killed"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Terminator force-kills processes with taskkill.
type Terminator struct {
	runner port.CmdRunner
}

// NewTerminator creates a Terminator that runs taskkill through runner.
func NewTerminator(runner port.CmdRunner) *Terminator {
	return &Terminator{runner: runner}
}

// Kill runs taskkill /F /PID pid. A non-zero taskkill exit is reported in
// the Outcome; the returned error is non-nil only when taskkill could not be
// run at all.
func (t *Terminator) Kill(ctx context.Context, pid uint32) (Outcome, error) {
	outcome := Outcome{PID: pid}

	_, err := t.runner.Run(ctx, "taskkill", "/F", "/PID", strconv.FormatUint(uint64(pid), 10))
	if err == nil {
		outcome.Killed = true
		logging.Log.Debugf("taskkill succeeded for PID %d", pid)
		return outcome, nil
	}

	var exitErr *port.ExitError
	if !errors.As(err, &exitErr) {
		return outcome, &port.ToolError{Tool: "taskkill", Err: err}
	}

	outcome.Reason = CleanDiagnostic(exitErr.Stderr)
	if outcome.Reason == "" {
		outcome.Reason = fmt.Sprintf("taskkill exited with status %d", exitErr.Code)
	}
	logging.Log.Debugf("taskkill failed for PID %d (status %d): %s", pid, exitErr.Code, outcome.Reason)
	return outcome, nil
}

// CleanDiagnostic turns taskkill's stderr into a one-line reason: invalid
// UTF-8 is replaced, surrounding whitespace trimmed and a leading "ERROR: "
// removed.
func CleanDiagnostic(stderr []byte) string {
	msg := strings.ToValidUTF8(string(stderr), "�")
	msg = strings.TrimSpace(msg)
	return strings.TrimPrefix(msg, errorPrefix)
}
