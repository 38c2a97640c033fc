package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/observability-api/internal/pkg/version"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildInfo version.Info
	}{
		{
			name: "full build information",
			buildInfo: version.Info{
				Version:     "1.4.0",
				Commit:      "4f2a9c1e8b",
				BuildDate:   "2025-03-14T09:26:53Z",
				BuildNumber: "128",
				GoVersion:   "go1.24.1",
				OS:          "linux",
				Arch:        "amd64",
			},
		},
		{
			name:      "zero value",
			buildInfo: version.Info{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := New(tt.buildInfo)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)

			require.NoError(t, h.VersionHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

			var got version.Info
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.buildInfo, got)
		})
	}
}
