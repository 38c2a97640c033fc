package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreatesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger := logrus.New()
	var console bytes.Buffer

	opts := NewProductionOptions("observability-api")
	opts.Dir = dir
	opts.EnableConsoleLog = true

	c, err := setup(logger, opts, &console)
	require.NoError(t, err)

	logger.WithField("component", "test").Info("service started")
	logger.Error("listener failed")
	logger.Debug("not emitted at info level")

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "Close must be idempotent")

	mainLog, err := os.ReadFile(filepath.Join(dir, "observability-api.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(mainLog)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "service started", first["msg"])
	assert.Equal(t, "test", first["component"])

	critical, err := os.ReadFile(filepath.Join(dir, "observability-api.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(critical), "listener failed")
	assert.NotContains(t, string(critical), "service started")

	assert.Contains(t, console.String(), "service started")
	assert.NotContains(t, console.String(), "not emitted")
}

func TestSetup_DevelopmentText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger := logrus.New()

	opts := NewDevelopmentOptions("dev")
	opts.Dir = dir
	opts.EnableConsoleLog = false

	c, err := setup(logger, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, TraceLevel, logger.GetLevel())

	logger.Trace("fine grained")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(filepath.Join(dir, "dev.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="fine grained"`)

	_, err = os.Stat(filepath.Join(dir, "dev.verbose.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_InvalidOptions(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	tests := []struct {
		name string
		opts Options
	}{
		{name: "missing name", opts: Options{}},
		{name: "dir is a file", opts: Options{Name: "x", Dir: file}},
		{name: "negative age", opts: Options{Name: "x", MaxAge: -1}},
		{name: "negative size", opts: Options{Name: "x", MaxSizeMB: -1}},
		{name: "negative backups", opts: Options{Name: "x", MaxBackups: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := setup(logrus.New(), tt.opts, nil)
			assert.Error(t, err)
		})
	}
}

func TestOptions_LevelDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, InfoLevel, (&Options{}).level())
	assert.Equal(t, WarnLevel, (&Options{Level: WarnLevel}).level())
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	entry := WithComponentAndFields("api", Fields{"component": "ignored", "port": 8080})
	assert.Equal(t, "api", entry.Data["component"])
	assert.Equal(t, 8080, entry.Data["port"])

	assert.Equal(t, "catalog", WithComponent("catalog").Data["component"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
