package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// fileExt is the extension of every log file.
	fileExt = "log"

	// defaultDir holds the log files when Options.Dir is empty.
	defaultDir = "logs"

	// Rotation policy used when the options leave it unset.
	defaultMaxSizeMB  = 100 // size of one file before rotation, in MB
	defaultMaxBackups = 20  // rotated files kept per output
)

var (
	// setupOnce makes Setup run at most once per process.
	setupOnce sync.Once

	// globalCloser is the closer built by the first Setup call. Later calls
	// return this same instance.
	globalCloser io.Closer

	// globalSetupErr is the error of the first Setup call. A failed setup is
	// not retried; later calls report the same error.
	globalSetupErr error
)

// Setup configures the standard logrus logger once per process. Later calls
// return the result of the first one.
//
// Notes:
//   - Call it at the top of main, before anything logs.
//   - Defer Close on the returned closer; it flushes and closes the files.
//   - Fatal entries close the files before the process exits.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(logrus.StandardLogger(), opts, os.Stdout)
	})

	return globalCloser, globalSetupErr
}

// setup applies opts to logger and wires the routing hook.
//
// Steps:
//  1. validate opts
//  2. set level and caller reporting, silence the logger's own output
//  3. create the log directory and one lumberjack writer per enabled file
//  4. attach the hook and replace ExitFunc so Fatal closes the files
//
// console receives console output; tests pass a buffer instead of stdout.
func setup(logger *logrus.Logger, opts Options, console io.Writer) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid log options: %w", err)
	}

	logger.SetLevel(opts.level())
	logger.SetReportCaller(opts.ReportCaller)
	logger.SetFormatter(&silentFormatter{})
	logger.SetOutput(io.Discard)

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	newFile := func(suffix string) *lumberjack.Logger {
		name := opts.Name + "." + fileExt
		if suffix != "" {
			name = opts.Name + "." + suffix + "." + fileExt
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, name),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	h := &hook{formatter: newFormatter(opts)}
	var closers []io.Closer

	mainFile := newFile("")
	h.mainWriter = mainFile
	closers = append(closers, mainFile)

	if opts.EnableCriticalLog {
		f := newFile("critical")
		h.criticalWriter = f
		closers = append(closers, f)
	}
	if opts.EnableVerboseLog {
		f := newFile("verbose")
		h.verboseWriter = f
		closers = append(closers, f)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = console
	}

	logger.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal calls os.Exit; flush the files first.
	logger.ExitFunc = func(code int) {
		_ = c.Close()
		os.Exit(code)
	}

	return c, nil
}
