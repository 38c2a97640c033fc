package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// silentFormatter is installed on the standard logger, whose output is
// io.Discard; the hook does the real formatting.
type silentFormatter struct{}

// Format discards the entry.
func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}

// newFormatter builds the formatter used by the hook.
//
// Timestamps are RFC 3339. The caller is reported as "function(line:N)",
// with opts.CallerPathPrefix replaced by "..."; the file field is left empty.
// opts.JSON selects JSON lines, text otherwise.
func newFormatter(opts Options) Formatter {
	prettyfier := func(frame *runtime.Frame) (function string, file string) {
		function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
		if opts.CallerPathPrefix != "" {
			if cut, found := strings.CutPrefix(function, opts.CallerPathPrefix); found {
				function = "..." + cut
			}
		}
		return
	}

	if opts.JSON {
		return &logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: prettyfier,
		}
	}

	return &logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  time.RFC3339,
		CallerPrettyfier: prettyfier,
	}
}
