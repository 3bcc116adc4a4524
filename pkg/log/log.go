// Package log is hue's debug logger. Output is off unless HUE_DEBUG is set
// or a tool enables it with -v.
package log

import (
	"io"
	"log"
	"os"
)

// Debug controls debug log output. Set by HUE_DEBUG environment variable by default.
var Debug = os.Getenv("HUE_DEBUG") != ""

var logger = log.New(os.Stderr, "hue: ", log.LstdFlags|log.Lmsgprefix)

// SetOutput redirects debug output, e.g. into a test buffer.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs a debug message if Debug is true.
func Debugf(format string, v ...any) {
	if !Debug {
		return
	}

	logger.Printf(format, v...)
}
