package port

import (
	"fmt"
	"strconv"
	"strings"
)

// FindListeningPIDs scans netstat -ano output for LISTENING rows bound to any
// of the given ports and returns the owning PIDs.
//
// A line matches a port when it contains ":<port> " (the trailing space keeps
// port 80 from matching 8080) and the LISTENING keyword. The PID is the last
// field of the line; lines whose last field is not a number are skipped.
func FindListeningPIDs(output string, ports []uint16) PIDSet {
	lines := strings.Split(output, "\n")
	pids := make(PIDSet)

	for _, p := range ports {
		needle := portNeedle(p)
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if !strings.Contains(line, needle) || !strings.Contains(line, ListeningState) {
				continue
			}

			pid, ok := parsePIDField(line)
			if !ok {
				continue
			}
			pids.Add(pid)
		}
	}
	return pids
}

// portNeedle returns the substring that marks an address ending in port p.
func portNeedle(p uint16) string {
	return fmt.Sprintf(":%d ", p)
}

// parsePIDField parses the last whitespace-delimited field of line as a PID.
func parsePIDField(line string) (uint32, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}

	pid, err := strconv.ParseUint(fields[len(fields)-1], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(pid), true
}
