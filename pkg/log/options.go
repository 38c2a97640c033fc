package log

import (
	"fmt"
	"os"
)

// Options configures Setup.
//
// The zero value of every field except Name is usable; see
// NewProductionOptions and NewDevelopmentOptions for the profiles used by
// the service.
type Options struct {
	// Name is used to build the log file names: <Name>.log, <Name>.critical.log
	// and <Name>.verbose.log.
	Name string

	// Dir is the directory holding the log files. Defaults to "logs".
	Dir string

	// Level is the minimum level emitted. PanicLevel (the zero value) is
	// treated as unset and selects InfoLevel.
	Level Level

	MaxAge     int // days, 0 keeps files forever
	MaxSizeMB  int // 0 selects defaultMaxSizeMB
	MaxBackups int // 0 selects defaultMaxBackups

	EnableCriticalLog bool // ERROR and above also go to <Name>.critical.log
	EnableVerboseLog  bool // DEBUG and TRACE go to <Name>.verbose.log instead of the main file
	EnableConsoleLog  bool // every entry is also written to stdout

	// JSON switches the file and console format from text to JSON lines.
	JSON bool

	// ReportCaller adds the calling function to every entry.
	ReportCaller bool

	// CallerPathPrefix is trimmed from the reported caller function,
	// e.g. "github.com/darkkaiser/observability-api".
	CallerPathPrefix string
}

// Validate reports the first invalid field.
//
// Rules:
//   - Name is required.
//   - Dir, when it exists, must be a directory.
//   - MaxAge, MaxSizeMB and MaxBackups must not be negative.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("log name is required")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("log directory %q exists and is a file", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge must be >= 0: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB must be >= 0: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups must be >= 0: %d", opts.MaxBackups)
	}

	return nil
}

// level returns the effective minimum level.
func (opts *Options) level() Level {
	if opts.Level == PanicLevel {
		return InfoLevel
	}
	return opts.Level
}
