package port

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lu-zhengda/portkill/internal/logging"
)

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Name   string
	Code   int
	Stderr []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// RealCmdRunner executes real system commands.
type RealCmdRunner struct{}

// Run executes a command and returns its stdout. A non-zero exit is returned
// as *ExitError carrying the command's stderr; any other error means the
// command could not be run at all.
func (r *RealCmdRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.Log.Debugf("exec: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	configureCmd(cmd)

	// Stderr is left nil so Output captures it into exec.ExitError.
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &ExitError{
			Name:   name,
			Code:   exitErr.ExitCode(),
			Stderr: exitErr.Stderr,
		}
	}
	return nil, err
}

// MockCmdRunner returns canned responses for testing.
type MockCmdRunner struct {
	Output []byte
	Err    error
	Calls  []string
}

// Run records the call and returns the pre-configured output and error.
func (m *MockCmdRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, commandKey(name, args))
	return m.Output, m.Err
}

// MultiMockCmdRunner returns different responses based on the command.
// Keys are "name arg1 arg2 ..." strings.
type MultiMockCmdRunner struct {
	Responses map[string]MockResponse
	Calls     []string
}

// MockResponse holds a single command's output and error.
type MockResponse struct {
	Output []byte
	Err    error
}

// Run records the call, looks up the command key and returns its
// pre-configured response. Falls back to empty output and nil error if no
// match is found.
func (m *MultiMockCmdRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := commandKey(name, args)
	m.Calls = append(m.Calls, key)
	if resp, ok := m.Responses[key]; ok {
		return resp.Output, resp.Err
	}
	return nil, nil
}

// CallsTo returns the recorded calls whose command name is name.
func (m *MultiMockCmdRunner) CallsTo(name string) []string {
	var calls []string
	for _, c := range m.Calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			calls = append(calls, c)
		}
	}
	return calls
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
