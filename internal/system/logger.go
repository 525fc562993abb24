package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger for the huelog tool itself.
// It prints to stderr with timestamps so it never mixes with log lines
// written to stdout.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "huelog",
})

// SetVerbose switches diagnostics between debug and info level.
func SetVerbose(v bool) {
	if v {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
