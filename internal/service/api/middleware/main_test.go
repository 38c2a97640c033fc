package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/stretchr/testify/require"
)

// setupTestLogger redirects the standard logger to a buffer in JSON format.
// Tests using it mutate global state and must not call t.Parallel.
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

func decodeLogEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}
