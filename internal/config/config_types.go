package config

import (
	"fmt"
	"slices"

	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/pkg/validation"
)

// AppConfig is the root of the configuration tree.
type AppConfig struct {
	Debug         bool                `json:"debug"`
	API           APIConfig           `json:"api"`
	Observability ObservabilityConfig `json:"observability"`
}

func (c *AppConfig) validate() error {
	if err := c.API.validate(); err != nil {
		return err
	}
	return checkStruct(c.Observability, "observability")
}

// VerifyRecommendations returns non-fatal warnings about risky settings.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("listen_port %d is a privileged port (1-1023); the process may need elevated rights", c.API.ListenPort))
	}
	if slices.Contains(c.API.AllowOrigins, "*") {
		warnings = append(warnings, "allow_origins is '*': every origin may call the API from a browser")
	}
	if !c.API.TLSServer {
		warnings = append(warnings, "tls_server is disabled: responses are served over plain HTTP")
	}

	return warnings
}

// APIConfig configures the HTTP server.
type APIConfig struct {
	ListenPort   int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer    bool            `json:"tls_server"`
	TLSCertFile  string          `json:"tls_cert_file" validate:"required_if=TLSServer true"`
	TLSKeyFile   string          `json:"tls_key_file" validate:"required_if=TLSServer true"`
	AllowOrigins []string        `json:"allow_origins" validate:"min=1,dive,cors_origin"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate() error {
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return newInvalidInputError("allow_origins: '*' cannot be combined with other origins")
	}
	if err := checkStruct(c, "api"); err != nil {
		return err
	}

	// The certificate pair is only read when TLS is on; a stale path left
	// in the file while TLS is off is ignored.
	if c.TLSServer {
		if err := validation.ValidateFile(c.TLSCertFile); err != nil {
			return apperrors.Wrapf(err, apperrors.InvalidInput, "tls_cert_file: '%s'", c.TLSCertFile)
		}
		if err := validation.ValidateFile(c.TLSKeyFile); err != nil {
			return apperrors.Wrapf(err, apperrors.InvalidInput, "tls_key_file: '%s'", c.TLSKeyFile)
		}
	}
	return nil
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerSecond int  `json:"requests_per_second" validate:"min=1"`
	Burst             int  `json:"burst" validate:"min=1"`
}

// ObservabilityConfig holds the descriptive values served by /info and
// /health. The defaults reproduce the reference payloads.
type ObservabilityConfig struct {
	APIVersion string       `json:"api_version" validate:"required"`
	System     SystemConfig `json:"system"`
	Info       InfoConfig   `json:"info"`
	Health     HealthConfig `json:"health"`
}

// SystemConfig identifies the information system.
type SystemConfig struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
	Version      string `json:"version" validate:"required"`
}

// InfoConfig holds the governance values of /info.
type InfoConfig struct {
	Environment                string   `json:"environment" validate:"required"`
	MaxDataClassification      string   `json:"max_data_classification" validate:"required"`
	Mentions                   []string `json:"mentions" validate:"omitempty,dive,mention"`
	ARRLevel                   string   `json:"arr_level"`
	ServiceLevel               string   `json:"service_level"`
	InformationSystemDirection string   `json:"information_system_direction"`
	ApplicationDirection       string   `json:"application_direction"`
	HomologationType           string   `json:"homologation_type"`

	// Date only, e.g. 2024-07-21 (interpreted as midnight UTC).
	HomologationEndDate string `json:"homologation_end_date" validate:"required,datetime=2006-01-02"`
}

// HealthConfig holds the status and dependencies reported by /health.
type HealthConfig struct {
	Status   string          `json:"status" validate:"required"`
	Services []ServiceConfig `json:"services" validate:"dive"`
}

// ServiceConfig describes one dependency. Status and response time are
// reported as configured; nothing is probed.
type ServiceConfig struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	URI            string `json:"uri" validate:"required,url"`
	Status         string `json:"status" validate:"required"`
	ResponseTimeMS int    `json:"response_time_ms" validate:"gte=0"`
}
