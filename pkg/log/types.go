package log

import (
	"github.com/sirupsen/logrus"
)

// Level is an alias of logrus.Level.
type Level = logrus.Level

// Levels, most severe first. PanicLevel is also the zero value of Level.
const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels lists every level, most severe first.
var AllLevels = logrus.AllLevels

// ParseLevel maps a level name ("info", "debug", ...) to a Level.
func ParseLevel(name string) (Level, error) {
	return logrus.ParseLevel(name)
}

// Aliases of the logrus types used by callers; production code outside this
// package does not import logrus.
type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	JSONFormatter = logrus.JSONFormatter
	TextFormatter = logrus.TextFormatter
)
