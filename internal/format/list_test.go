package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"empty slice", []string{}, ""},
		{"one", []string{"a"}, "a"},
		{"two", []string{"a", "b"}, "a and b"},
		{"three", []string{"a", "b", "c"}, "a, b, and c"},
		{"four", []string{"80", "443", "3000", "8080"}, "80, 443, 3000, and 8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, List(tt.items))
		})
	}
}

func TestUints(t *testing.T) {
	assert.Equal(t, []string{"0", "8080", "65535"}, Uints([]uint16{0, 8080, 65535}))
	assert.Equal(t, []string{"4", "4294967295"}, Uints([]uint32{4, 4294967295}))
	assert.Empty(t, Uints([]uint32{}))
}
