// Package log wraps logrus with file rotation (lumberjack) and level-based
// routing to main, critical, verbose and console outputs.
//
// Every logger in the process is the logrus standard logger. Setup attaches
// a routing hook to it and silences its own output, so entries are written
// only by the hook.
//
// Outputs:
//
//   - <name>.log: every entry (DEBUG and TRACE excluded when the verbose file
//     is enabled)
//   - <name>.critical.log: ERROR, FATAL and PANIC
//   - <name>.verbose.log: DEBUG and TRACE
//   - stdout: every entry, when the console is enabled
//
// Files live under Options.Dir ("logs" by default) and are rotated by size
// and age through lumberjack.
//
// Usage:
//
//	closer, err := log.Setup(log.NewProductionOptions("observability-api"))
//	if err != nil {
//		// report on stderr and exit
//	}
//	defer closer.Close()
//
//	log.WithComponentAndFields("api.service", log.Fields{
//		"port": 8000,
//	}).Info("API service starting")
//
// Components name the emitting part of the service ("main", "api.handler",
// ...), so every entry carries a "component" field.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WithComponent returns an entry tagged with the given component name.
//
// The entry is bound to the standard logger; fields added later with
// WithField or WithFields keep the component.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields is WithComponent plus extra fields. The component
// key wins over a "component" entry in fields.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

// SetDebugMode switches the standard logger between TraceLevel and InfoLevel.
//
// It overrides the level chosen by Setup and is called once the
// configuration has been read, since the debug flag lives there.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger returns the logger configured by Setup.
//
// Tests use it with SetOutput, SetFormatter and SetLevel to capture entries
// and restore the previous state afterwards.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput sets the writer of the standard logger.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter sets the formatter of the standard logger.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel sets the level of the standard logger.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}
