// Package log is a thin wrapper of the standard logger with a verbose switch.
package log

import (
	"fmt"
	stdlog "log"
)

// F is the debug log function, a no-op until Set enables verbose mode.
var F = func(string, ...any) {}

// Set sets the logger's verbose mode and output flags.
func Set(verbose bool, flag int) {
	if verbose {
		F = Debugf
	} else {
		F = func(string, ...any) {}
	}
	stdlog.SetFlags(flag)
}

// Debugf prints debug log.
func Debugf(f string, v ...any) {
	stdlog.Output(2, fmt.Sprintf(f, v...))
}

// Printf prints log.
func Printf(f string, v ...any) {
	stdlog.Printf(f, v...)
}

// Fatal log and exit.
func Fatal(v ...any) {
	stdlog.Fatal(v...)
}

// Fatalf log and exit.
func Fatalf(f string, v ...any) {
	stdlog.Fatalf(f, v...)
}
