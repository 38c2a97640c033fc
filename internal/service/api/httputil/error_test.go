package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type logEntry struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Component  string `json:"component"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	StatusCode int    `json:"status_code"`
}

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

// TestErrorHandler mutates the global logger and must not run in parallel.
func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		accept      string
		err         error
		wantStatus  int
		wantYAML    bool
		wantDetails string
		wantLevel   string
	}{
		{
			name:        "not found json",
			method:      http.MethodGet,
			path:        "/missing",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantDetails: "Not Found",
			wantLevel:   "warning",
		},
		{
			name:        "not found on yaml path",
			method:      http.MethodGet,
			path:        "/missing.yaml",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantYAML:    true,
			wantDetails: "Not Found",
			wantLevel:   "warning",
		},
		{
			name:        "accept header selects yaml",
			method:      http.MethodGet,
			path:        "/info",
			accept:      MIMEApplicationYAML,
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantYAML:    true,
			wantDetails: "Method Not Allowed",
			wantLevel:   "warning",
		},
		{
			name:        "custom message kept",
			method:      http.MethodGet,
			path:        "/info",
			err:         echo.NewHTTPError(http.StatusBadRequest, "paramètre invalide"),
			wantStatus:  http.StatusBadRequest,
			wantDetails: "paramètre invalide",
			wantLevel:   "warning",
		},
		{
			name:        "error message",
			method:      http.MethodGet,
			path:        "/info",
			err:         echo.NewHTTPError(http.StatusServiceUnavailable, errors.New("maintenance")),
			wantStatus:  http.StatusServiceUnavailable,
			wantDetails: "maintenance",
			wantLevel:   "error",
		},
		{
			name:        "plain error hides its cause",
			method:      http.MethodGet,
			path:        "/health",
			err:         errors.New("db password=secret rejected"),
			wantStatus:  http.StatusInternalServerError,
			wantDetails: "Internal Server Error",
			wantLevel:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := setupTestLogger(t)

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			if tt.wantYAML {
				assert.Equal(t, MIMEApplicationYAML, rec.Header().Get(echo.HeaderContentType))
				require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &body))
			} else {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			}
			assert.Equal(t, map[string]string{"message": "Erreur interne", "details": tt.wantDetails}, body)

			var entry logEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, "api.error_handler", entry.Component)
			assert.Equal(t, tt.path, entry.Path)
			assert.Equal(t, tt.method, entry.Method)
			assert.Equal(t, tt.wantStatus, entry.StatusCode)
		})
	}
}

func TestErrorHandler_HeadRequest(t *testing.T) {
	setupTestLogger(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/missing", nil), rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	setupTestLogger(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/info", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "déjà envoyé"))

	ErrorHandler(echo.ErrInternalServerError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "déjà envoyé", rec.Body.String())
}
