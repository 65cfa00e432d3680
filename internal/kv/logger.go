package kv

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/minitwitter/internal/logging"
)

// storeLogger satisfies both badger.Logger and pebble.Logger. Errors go to
// the log file; everything else becomes a trace entry.
type storeLogger struct {
	name string
}

func (l storeLogger) Errorf(format string, args ...interface{}) {
	logging.Errorf("%s: %s", l.name, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l storeLogger) Warningf(format string, args ...interface{}) {
	l.trace("warning", format, args...)
}

func (l storeLogger) Infof(format string, args ...interface{}) {
	l.trace("info", format, args...)
}

func (l storeLogger) Debugf(format string, args ...interface{}) {
	l.trace("debug", format, args...)
}

func (l storeLogger) Fatalf(format string, args ...interface{}) {
	l.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, "%s: fatal: %s\n", l.name, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l storeLogger) trace(level, format string, args ...interface{}) {
	if !logging.TraceEnabled() {
		return
	}
	logging.Trace("kv."+l.name, map[string]interface{}{
		"level":   level,
		"message": strings.TrimSpace(fmt.Sprintf(format, args...)),
	})
}
