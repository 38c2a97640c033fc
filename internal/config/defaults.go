package config

const (
	DefaultListenPort        = 8000
	DefaultRequestsPerSecond = 20
	DefaultBurst             = 40

	DefaultAPIVersion = "1.0.2"
)

// Default returns the configuration used when no file and no environment
// override is present.
func Default() AppConfig {
	return AppConfig{
		Debug: false,
		API: APIConfig{
			ListenPort:   DefaultListenPort,
			AllowOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
		},
		Observability: ObservabilityConfig{
			APIVersion: DefaultAPIVersion,
			System: SystemConfig{
				Name:         "ROC NG",
				Abbreviation: "SCL",
				Version:      "2.3.1",
			},
			Info: InfoConfig{
				Environment:                "production",
				MaxDataClassification:      "DR",
				Mentions:                   []string{"CP"},
				ARRLevel:                   "I3",
				ServiceLevel:               "infogerance",
				InformationSystemDirection: "SCL",
				ApplicationDirection:       "EMA/DORH/BIAR",
				HomologationType:           "APE",
				HomologationEndDate:        "2024-07-21",
			},
			Health: HealthConfig{
				Status: "UP",
				Services: []ServiceConfig{
					{
						Name:           "base de donnée",
						Description:    "base de données Postgres",
						Category:       "sgbdr",
						URI:            "https://url_service",
						Status:         "UP",
						ResponseTimeMS: 4,
					},
				},
			},
		},
	}
}
