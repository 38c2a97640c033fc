package api

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/observability-api/pkg/log"
	"go.uber.org/goleak"
)

// TestMain runs tests and checks for goroutine leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// setupTestLogger redirects the standard logger to a JSON buffer until the
// test ends. Tests using it must not run in parallel.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	out, formatter, level := logger.Out, logger.Formatter, logger.GetLevel()

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(out)
		applog.SetFormatter(formatter)
		applog.SetLevel(level)
	})
	return buf
}
