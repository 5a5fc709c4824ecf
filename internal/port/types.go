package port

import (
	"fmt"
	"sort"
)

// ListeningState is the netstat state keyword for a bound, accepting socket.
const ListeningState = "LISTENING"

// PIDSet is an unordered set of process identifiers.
type PIDSet map[uint32]struct{}

// Add inserts pid into the set.
func (s PIDSet) Add(pid uint32) {
	s[pid] = struct{}{}
}

// Contains reports whether pid is in the set.
func (s PIDSet) Contains(pid uint32) bool {
	_, ok := s[pid]
	return ok
}

// Sorted returns the PIDs in ascending order for stable display.
func (s PIDSet) Sorted() []uint32 {
	pids := make([]uint32, 0, len(s))
	for pid := range s {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool {
		return pids[i] < pids[j]
	})
	return pids
}

// InvalidPortError is returned when an argument is not a 16-bit port number.
type InvalidPortError struct {
	Arg string
	Err error
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("Invalid port number supplied: %s", e.Arg)
}

func (e *InvalidPortError) Unwrap() error {
	return e.Err
}

// ToolError is returned when an external utility could not be run or its
// output could not be used. It aborts the whole run.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
