package port

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/lu-zhengda/portkill/internal/logging"
)

// ErrNotText is returned when a utility's output is not valid UTF-8.
var ErrNotText = errors.New("output is not valid UTF-8 text")

// Scanner resolves the processes listening on a set of ports.
type Scanner interface {
	ListeningPIDs(ctx context.Context, ports []uint16) (PIDSet, error)
}

// CmdRunner abstracts external command execution for testability.
type CmdRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NetstatScanner implements Scanner using Windows netstat.
type NetstatScanner struct {
	runner CmdRunner
}

// NewNetstatScanner creates a new scanner backed by netstat.
func NewNetstatScanner(runner CmdRunner) *NetstatScanner {
	return &NetstatScanner{runner: runner}
}

// ListeningPIDs runs netstat -ano once and returns the PIDs listening on any
// of ports. Failing to run netstat or decode its output is fatal.
func (s *NetstatScanner) ListeningPIDs(ctx context.Context, ports []uint16) (PIDSet, error) {
	out, err := s.runner.Run(ctx, "netstat", "-ano")
	if err != nil {
		return nil, &ToolError{Tool: "netstat", Err: err}
	}
	if !utf8.Valid(out) {
		return nil, &ToolError{Tool: "netstat", Err: ErrNotText}
	}

	text := string(out)
	logging.Log.Debugf("netstat returned %d lines", strings.Count(text, "\n"))

	pids := FindListeningPIDs(text, ports)
	logging.Log.Debugf("resolved %d listening PID(s)", len(pids))
	return pids, nil
}
