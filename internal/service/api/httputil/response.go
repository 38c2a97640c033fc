// Package httputil renders API payloads and errors in JSON or YAML.
package httputil

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/observability-api/internal/pkg/normalize"
	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// MIMEApplicationYAML is the content type of YAML responses.
const MIMEApplicationYAML = "application/x-yaml"

// Format selects the encoding of a response body.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatOf returns FormatYAML for paths ending in ".yaml" or requests that
// accept YAML, FormatJSON otherwise.
func FormatOf(r *http.Request) Format {
	if strings.HasSuffix(r.URL.Path, ".yaml") || strings.Contains(r.Header.Get(echo.HeaderAccept), "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// Render writes v with the given status code.
//
// JSON goes through encoding/json with the struct tags. YAML first passes v
// through normalize.Value so enums become their codes and records keep
// their declared field order under their wire names.
func Render(c echo.Context, code int, format Format, v any) error {
	if format == FormatYAML {
		return YAML(c, code, v)
	}
	return c.JSON(code, v)
}

// YAML writes the YAML encoding of v.
func YAML(c echo.Context, code int, v any) error {
	body, err := MarshalYAML(v)
	if err != nil {
		return err
	}
	return c.Blob(code, MIMEApplicationYAML, body)
}

// MarshalYAML normalizes v and encodes it as a YAML document.
func MarshalYAML(v any) ([]byte, error) {
	return yaml.Marshal(normalize.Value(v))
}
