// Package observability defines the payloads served by the info and health
// endpoints. JSON field names are the wire names; the YAML rendering reuses
// them through the normalize package.
package observability

import "time"

// Metadata describes the response contract.
type Metadata struct {
	// Version of the observability API contract
	APIVersion string `json:"versionApi" validate:"required" example:"1.0.2"`
}

// SystemInfo identifies the information system.
type SystemInfo struct {
	Name         string `json:"nom" validate:"required" example:"ROC NG"`
	Abbreviation string `json:"trigramme" validate:"required" example:"SCL"`
	Version      string `json:"version" validate:"required" example:"2.3.1"`
}

// Service is one dependency reported by the health endpoint.
type Service struct {
	Name        string `json:"nom" validate:"required" example:"base de donnée"`
	Description string `json:"description" example:"base de données Postgres"`
	Category    string `json:"categorie" example:"sgbdr"`
	URI         string `json:"uri" validate:"required,url" example:"https://url_service"`
	Status      string `json:"statut" validate:"required" example:"UP"`

	// Response time in milliseconds
	ResponseTime int `json:"tempsReponse" validate:"gte=0" example:"4"`
}

// HealthData is the body of the health envelope.
type HealthData struct {
	Status   string     `json:"statut" validate:"required" example:"UP"`
	System   SystemInfo `json:"infoSi"`
	Services []Service  `json:"services" validate:"dive"`
}

// InfoData is the body of the info envelope.
type InfoData struct {
	System                     SystemInfo `json:"infoSi"`
	VersionDate                time.Time  `json:"dateVersion" validate:"required"`
	Environment                string     `json:"environnement" validate:"required" example:"production"`
	MaxDataClassification      string     `json:"classificationMaxDonnees" validate:"required" example:"DR"`
	Mentions                   []Mention  `json:"mentions" validate:"omitempty,dive,mention" swaggertype:"array,string" example:"CP"`
	ARRLevel                   string     `json:"niveauArr" example:"I3"`
	ServiceLevel               string     `json:"niveauService" example:"infogerance"`
	InformationSystemDirection string     `json:"directionSystemeInformation" example:"SCL"`
	ApplicationDirection       string     `json:"directionApplication" example:"EMA/DORH/BIAR"`
	HomologationType           string     `json:"typeHomologation" example:"APE"`
	HomologationEndDate        time.Time  `json:"dateFinHomologation" validate:"required"`
}

// Envelope wraps every payload with its contract metadata.
type Envelope[T any] struct {
	Metadata Metadata `json:"metadata"`
	Data     T        `json:"data"`
}

// Info is the response of GET /info.
type Info = Envelope[InfoData]

// Health is the response of GET /health.
type Health = Envelope[HealthData]

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message" example:"Erreur interne"`
	Details string `json:"details" example:"Not Found"`
}
