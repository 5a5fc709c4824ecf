package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const netstatSample = `
Active Connections

  Proto  Local Address          Foreign Address        State           PID
  TCP    0.0.0.0:80             0.0.0.0:0              LISTENING       4
  TCP    0.0.0.0:135            0.0.0.0:0              LISTENING       1100
  TCP    0.0.0.0:3000           0.0.0.0:0              LISTENING       5678
  TCP    0.0.0.0:8080           0.0.0.0:0              LISTENING       1234
  TCP    127.0.0.1:8080         127.0.0.1:52144        ESTABLISHED     1234
  TCP    127.0.0.1:52144        127.0.0.1:8080         ESTABLISHED     9999
  TCP    [::]:8080              [::]:0                 LISTENING       1234
  TCP    [::]:9000              [::]:0                 LISTENING       2222
  TCP    127.0.0.1:9001         0.0.0.0:0              LISTENING       2222
  UDP    0.0.0.0:5353           *:*                                    3333
`

func TestFindListeningPIDs(t *testing.T) {
	tests := []struct {
		name  string
		ports []uint16
		want  []uint32
	}{
		{"single listener", []uint16{8080}, []uint32{1234}},
		{"ipv4 and ipv6 rows collapse", []uint16{8080}, []uint32{1234}},
		{"several ports", []uint16{3000, 8080}, []uint32{1234, 5678}},
		{"one process on two ports", []uint16{9000, 9001}, []uint32{2222}},
		{"port prefix does not match", []uint16{8}, []uint32{}},
		{"shorter port is not a prefix match", []uint16{80}, []uint32{4}},
		{"established only", []uint16{52144}, []uint32{}},
		{"udp has no listening state", []uint16{5353}, []uint32{}},
		{"nothing requested", nil, []uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindListeningPIDs(netstatSample, tt.ports)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestFindListeningPIDs_SingleLine(t *testing.T) {
	pids := FindListeningPIDs("TCP 0.0.0.0:8080 0.0.0.0:0 LISTENING 1234", []uint16{8080})
	assert.True(t, pids.Contains(1234))
	assert.Len(t, pids, 1)
}

func TestFindListeningPIDs_EstablishedIgnored(t *testing.T) {
	pids := FindListeningPIDs("TCP 0.0.0.0:8080 10.0.0.2:51000 ESTABLISHED 1234", []uint16{8080})
	assert.False(t, pids.Contains(1234))
	assert.Empty(t, pids)
}

func TestFindListeningPIDs_PrefixBoundary(t *testing.T) {
	pids := FindListeningPIDs("TCP 0.0.0.0:80 0.0.0.0:0 LISTENING 4", []uint16{8080})
	assert.Empty(t, pids)
}

func TestFindListeningPIDs_SkipsBadPID(t *testing.T) {
	input := "TCP 0.0.0.0:8080 0.0.0.0:0 LISTENING n/a\r\n" +
		"TCP 0.0.0.0:8080 0.0.0.0:0 LISTENING -7\r\n" +
		"TCP 0.0.0.0:8081 0.0.0.0:0 LISTENING 4321\r\n"

	pids := FindListeningPIDs(input, []uint16{8080, 8081})
	assert.Equal(t, []uint32{4321}, pids.Sorted())
}

func TestFindListeningPIDs_CRLF(t *testing.T) {
	input := "  TCP    0.0.0.0:445    0.0.0.0:0    LISTENING    4\r\n"
	pids := FindListeningPIDs(input, []uint16{445})
	assert.Equal(t, []uint32{4}, pids.Sorted())
}

func TestFindListeningPIDs_EmptyInput(t *testing.T) {
	assert.Empty(t, FindListeningPIDs("", []uint16{80}))
}

func TestParsePIDField(t *testing.T) {
	tests := []struct {
		line   string
		want   uint32
		wantOK bool
	}{
		{"TCP 0.0.0.0:80 0.0.0.0:0 LISTENING 4", 4, true},
		{"TCP 0.0.0.0:80 0.0.0.0:0 LISTENING 4294967295", 4294967295, true},
		{"TCP 0.0.0.0:80 0.0.0.0:0 LISTENING 4294967296", 0, false},
		{"TCP 0.0.0.0:80 0.0.0.0:0 LISTENING", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePIDField(tt.line)
		assert.Equal(t, tt.wantOK, ok, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestPIDSet(t *testing.T) {
	s := make(PIDSet)
	s.Add(30)
	s.Add(10)
	s.Add(30)
	s.Add(20)

	assert.Len(t, s, 3)
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(40))
	assert.Equal(t, []uint32{10, 20, 30}, s.Sorted())
	assert.Equal(t, []uint32{}, make(PIDSet).Sorted())
}
