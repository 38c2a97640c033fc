package middleware

import (
	"io"

	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger implements echo's logger interface on top of the application
// logger so that framework messages land in the same outputs.
//
// Usage:
//
//	e := echo.New()
//	e.Logger = middleware.Logger{Logger: applog.StandardLogger()}
//
// Mapping:
//   - Print, Debug, Info, Warn, Error, Fatal and Panic forward to the
//     logrus method of the same name, including the f variants
//   - the j variants log the JSON map as fields with an empty message
//   - prefix and header settings are ignored; the formatter decides layout
type Logger struct {
	*applog.Logger
}

// Output returns the writer of the underlying logger. After Setup this is
// io.Discard, since the routing hook does the writing.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

// SetOutput replaces the writer of the underlying logger.
func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix and headers are not supported.
func (l Logger) Prefix() string   { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level maps the application level to the closest echo level. Trace counts
// as DEBUG; Panic and Fatal have no echo counterpart and map to OFF.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel ignores log.OFF.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) Print(i ...any)                 { l.Logger.Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.Logger.Printf(format, a...) }
func (l Logger) Printj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...any)                 { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.Logger.Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...any)                 { l.Logger.Info(i...) }
func (l Logger) Infof(format string, a ...any) { l.Logger.Infof(format, a...) }
func (l Logger) Infoj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...any)                 { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, a ...any) { l.Logger.Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...any)                 { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.Logger.Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...any)                 { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.Logger.Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...any)                 { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.Logger.Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Panic() }
