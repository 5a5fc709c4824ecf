package port

import "strconv"

// ParsePorts converts command-line arguments to port numbers, keeping the
// first occurrence of each port. It stops at the first argument that is not
// a decimal number in [0, 65535].
func ParsePorts(args []string) ([]uint16, error) {
	seen := make(map[uint16]bool, len(args))
	ports := make([]uint16, 0, len(args))

	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return nil, &InvalidPortError{Arg: arg, Err: err}
		}

		p := uint16(n)
		if seen[p] {
			continue
		}
		seen[p] = true
		ports = append(ports, p)
	}

	return ports, nil
}
