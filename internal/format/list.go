// Package format renders values for human-readable console output.
package format

import (
	"strconv"
	"strings"
)

// List joins items as an English list: "a", "a and b", "a, b, and c".
func List(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		last := len(items) - 1
		return strings.Join(items[:last], ", ") + ", and " + items[last]
	}
}

// Uints formats unsigned integers in order, for use with List.
func Uints[T ~uint16 | ~uint32](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatUint(uint64(v), 10)
	}
	return out
}
