package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/observability-api/internal/config"
	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultListenPort, cfg.API.ListenPort)
	})

	t.Run("default file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(`{"api": {"listen_port": 8081}}`), 0o600))
		t.Chdir(dir)

		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, 8081, cfg.API.ListenPort)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"debug": true}`), 0o600))

		cfg, err := loadConfig([]string{"--config", path})
		require.NoError(t, err)
		assert.True(t, cfg.Debug)

		cfg, err = loadConfig([]string{"-c", path})
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "absent.json")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := loadConfig([]string{"--port", "80"})
		assert.Error(t, err)
	})
}

func TestErrorFields(t *testing.T) {
	t.Parallel()

	cause := errors.New("parsing time \"2024-13-01\": month out of range")
	err := apperrors.Wrap(
		apperrors.Wrapf(cause, apperrors.ParsingFailed, "info.homologation_end_date: '%s'", "2024-13-01"),
		apperrors.InvalidInput, "catalog rejected",
	)

	fields := errorFields(err)
	assert.Equal(t, err, fields["error"])
	assert.Equal(t, "ParsingFailed", fields["error_type"])
	assert.Equal(t, cause.Error(), fields["root_cause"])
}

func TestBanner(t *testing.T) {
	t.Parallel()

	assert.Contains(t, banner, "%s")
	assert.NotEmpty(t, Version)
}
