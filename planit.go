// Package planit implements a modal, vim-flavored task tracker for the
// terminal. The root package ties the pieces together: it owns the
// application state, the input loop that resolves key sequences into
// commands, and the consumer loop that applies those commands to the
// screen.
package planit

import (
	"log"
	"os"
	"strconv"
)

// Application metadata, shown on the opening view and by --version.
const (
	Name    = "planit"
	Tagline = "project planning for the terminally inclined"
	Version = "0.1.0"
	Repo    = "https://github.com/jac-oblong/planit"
)

type traceLogger interface {
	Printf(string, ...interface{})
}
type nullTraceLogger struct{}

func (ntl nullTraceLogger) Printf(_ string, _ ...interface{}) {}

var tracer traceLogger = nullTraceLogger{}

func init() {
	if v, err := strconv.ParseBool(os.Getenv("PLANIT_TRACE")); err == nil && v {
		tracer = log.New(os.Stderr, "planit: ", log.LstdFlags)
		tracer.Printf("==== INITIALIZED tracer ====")
	}
}
