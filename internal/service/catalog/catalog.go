// Package catalog builds the payloads served by the info and health
// endpoints from the configured descriptive values.
//
// A Catalog is built once at startup, validated, and never modified
// afterwards; it is safe for concurrent use.
package catalog

import (
	"slices"
	"time"

	"github.com/darkkaiser/observability-api/internal/config"
	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/internal/pkg/validator"
	"github.com/darkkaiser/observability-api/internal/service/api/model/observability"
)

// dateLayout is the layout of configured dates.
const dateLayout = "2006-01-02"

// Catalog holds the immutable parts of both payloads.
type Catalog struct {
	metadata observability.Metadata
	system   observability.SystemInfo

	info     observability.InfoData // VersionDate is filled per request
	health   observability.HealthData
	services []observability.Service
}

// New converts cfg into wire values and validates both payloads.
func New(cfg config.ObservabilityConfig) (*Catalog, error) {
	mentions := make([]observability.Mention, 0, len(cfg.Info.Mentions))
	for i, code := range cfg.Info.Mentions {
		m, err := observability.ParseMention(code)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "info.mentions[%d]", i)
		}
		mentions = append(mentions, m)
	}

	endDate, err := time.ParseInLocation(dateLayout, cfg.Info.HomologationEndDate, time.UTC)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "info.homologation_end_date: '%s'", cfg.Info.HomologationEndDate)
	}

	c := &Catalog{
		metadata: observability.Metadata{APIVersion: cfg.APIVersion},
		system: observability.SystemInfo{
			Name:         cfg.System.Name,
			Abbreviation: cfg.System.Abbreviation,
			Version:      cfg.System.Version,
		},
	}

	c.info = observability.InfoData{
		System:                     c.system,
		Environment:                cfg.Info.Environment,
		MaxDataClassification:      cfg.Info.MaxDataClassification,
		Mentions:                   mentions,
		ARRLevel:                   cfg.Info.ARRLevel,
		ServiceLevel:               cfg.Info.ServiceLevel,
		InformationSystemDirection: cfg.Info.InformationSystemDirection,
		ApplicationDirection:       cfg.Info.ApplicationDirection,
		HomologationType:           cfg.Info.HomologationType,
		HomologationEndDate:        endDate,
	}

	c.services = make([]observability.Service, 0, len(cfg.Health.Services))
	for _, s := range cfg.Health.Services {
		c.services = append(c.services, observability.Service{
			Name:         s.Name,
			Description:  s.Description,
			Category:     s.Category,
			URI:          s.URI,
			Status:       s.Status,
			ResponseTime: s.ResponseTimeMS,
		})
	}
	c.health = observability.HealthData{
		Status: cfg.Health.Status,
		System: c.system,
	}

	// VersionDate is required; validate with a representative instant.
	if err := validator.Struct(c.Info(time.Now())); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "info payload")
	}
	if err := validator.Struct(c.Health()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "health payload")
	}

	return c, nil
}

// Info returns the info envelope with dateVersion set to now.
func (c *Catalog) Info(now time.Time) observability.Info {
	data := c.info
	data.VersionDate = now
	data.Mentions = slices.Clone(c.info.Mentions)

	return observability.Info{
		Metadata: c.metadata,
		Data:     data,
	}
}

// Health returns the health envelope.
func (c *Catalog) Health() observability.Health {
	data := c.health
	data.Services = slices.Clone(c.services)

	return observability.Health{
		Metadata: c.metadata,
		Data:     data,
	}
}
