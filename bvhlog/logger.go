// Package bvhlog provides the leveled logging used by the builder and refit
// paths to report structural statistics (node/leaf counts, build duration).
// It never sits on the query hot path: no operation suspends, blocks, or
// performs I/O while a ray or point query is in flight.
package bvhlog

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to SetLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logging interface builder and refit paths log
// through. BuildComplete and RefitComplete below are the only entry points
// the rest of the package should call; they own the message shape so
// every call site reports the same fields the same way.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}

// BuildComplete reports a finished tree build at Debug level: how many
// primitives went in, the resulting node/leaf counts, the deepest leaf,
// and how long the build took. l may be nil, in which case this is a
// no-op — callers that never attached a logger pay nothing.
func BuildComplete(l Logger, label string, numPrims, nodeCount, leafCount, maxDepth int, elapsed time.Duration) {
	if l == nil {
		return
	}
	l.Debugf("%s build: %d primitives -> %d nodes (%d leaves), max depth %d, took %s",
		label, numPrims, nodeCount+leafCount, leafCount, maxDepth, elapsed)
}

// RefitComplete reports a finished bottom-up bbox refit at Notice level:
// how many shape transforms were applied and how long the pass took.
func RefitComplete(l Logger, shapeCount int, elapsed time.Duration) {
	if l == nil {
		return
	}
	l.Noticef("scene refit: %d shapes, took %s", shapeCount, elapsed)
}
