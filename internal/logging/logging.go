// Package logging configures the leveled logger shared by portkill's
// packages. Output goes to the writer given to Setup, normally stderr, so it
// never mixes with the report printed on stdout.
package logging

import (
	"io"

	gologging "github.com/op/go-logging"
)

const (
	// Module is the go-logging module name used by every package.
	Module = "portkill"

	format = `%{level:.4s} ▶ %{message}`
)

// Log is the module logger. Setup decides where it writes and at which level.
var Log = gologging.MustGetLogger(Module)

// Setup points the module logger at w and sets its level.
func Setup(w io.Writer, debug bool) *gologging.Logger {
	formatter := gologging.MustStringFormatter(format)
	backend := gologging.NewBackendFormatter(gologging.NewLogBackend(w, "", 0), formatter)
	gologging.SetBackend(backend)

	if debug {
		gologging.SetLevel(gologging.DEBUG, Module)
		Log.Debug("Loglevel set to debug")
	} else {
		gologging.SetLevel(gologging.INFO, Module)
	}

	return Log
}
