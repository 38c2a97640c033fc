// Package docs registers the OpenAPI document served under /swagger.
//
// The document follows the layout swag emits from the annotations on main
// and on the handlers. It is maintained together with those annotations;
// docs_test.go checks it against the routes and the wire types.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Nom Direction Application",
            "email": "adresse.a.definir@intradef.gouv.fr"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "https://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Statut global du système et état des services dont il dépend.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "observabilité",
                    "statut",
                    "supervision"
                ],
                "summary": "État de santé du système",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/observability.Envelope-observability_HealthData"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/observability.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health.yaml": {
            "get": {
                "description": "Même contenu que /health, sérialisé en YAML.",
                "produces": [
                    "application/x-yaml"
                ],
                "tags": [
                    "observabilité",
                    "statut",
                    "supervision"
                ],
                "summary": "État de santé du système (YAML)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/observability.Envelope-observability_HealthData"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/observability.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/info": {
            "get": {
                "description": "Identification du système d'information, environnement, classification maximale\ndes données, mentions, niveaux ARR et de service, directions et homologation.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "observabilité",
                    "gouvernance"
                ],
                "summary": "Informations de gouvernance du système",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/observability.Envelope-observability_InfoData"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/observability.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/info.yaml": {
            "get": {
                "description": "Même contenu que /info, sérialisé en YAML.",
                "produces": [
                    "application/x-yaml"
                ],
                "tags": [
                    "observabilité",
                    "gouvernance"
                ],
                "summary": "Informations de gouvernance du système (YAML)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/observability.Envelope-observability_InfoData"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/observability.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Version, commit, date et numéro de build, version de Go et plateforme.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "système"
                ],
                "summary": "Informations de build",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Info"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "observability.Envelope-observability_HealthData": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/observability.HealthData"
                },
                "metadata": {
                    "$ref": "#/definitions/observability.Metadata"
                }
            }
        },
        "observability.Envelope-observability_InfoData": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/observability.InfoData"
                },
                "metadata": {
                    "$ref": "#/definitions/observability.Metadata"
                }
            }
        },
        "observability.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string",
                    "example": "Not Found"
                },
                "message": {
                    "type": "string",
                    "example": "Erreur interne"
                }
            }
        },
        "observability.HealthData": {
            "type": "object",
            "required": [
                "statut"
            ],
            "properties": {
                "infoSi": {
                    "$ref": "#/definitions/observability.SystemInfo"
                },
                "services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/observability.Service"
                    }
                },
                "statut": {
                    "type": "string",
                    "example": "UP"
                }
            }
        },
        "observability.InfoData": {
            "type": "object",
            "required": [
                "classificationMaxDonnees",
                "dateFinHomologation",
                "dateVersion",
                "environnement",
                "mentions"
            ],
            "properties": {
                "classificationMaxDonnees": {
                    "type": "string",
                    "example": "DR"
                },
                "dateFinHomologation": {
                    "type": "string"
                },
                "dateVersion": {
                    "type": "string"
                },
                "directionApplication": {
                    "type": "string",
                    "example": "EMA/DORH/BIAR"
                },
                "directionSystemeInformation": {
                    "type": "string",
                    "example": "SCL"
                },
                "environnement": {
                    "type": "string",
                    "example": "production"
                },
                "infoSi": {
                    "$ref": "#/definitions/observability.SystemInfo"
                },
                "mentions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "CP"
                    ]
                },
                "niveauArr": {
                    "type": "string",
                    "example": "I3"
                },
                "niveauService": {
                    "type": "string",
                    "example": "infogerance"
                },
                "typeHomologation": {
                    "type": "string",
                    "example": "APE"
                }
            }
        },
        "observability.Metadata": {
            "type": "object",
            "required": [
                "versionApi"
            ],
            "properties": {
                "versionApi": {
                    "description": "Version of the observability API contract",
                    "type": "string",
                    "example": "1.0.2"
                }
            }
        },
        "observability.Service": {
            "type": "object",
            "required": [
                "nom",
                "statut",
                "uri"
            ],
            "properties": {
                "categorie": {
                    "type": "string",
                    "example": "sgbdr"
                },
                "description": {
                    "type": "string",
                    "example": "base de données Postgres"
                },
                "nom": {
                    "type": "string",
                    "example": "base de donnée"
                },
                "statut": {
                    "type": "string",
                    "example": "UP"
                },
                "tempsReponse": {
                    "description": "Response time in milliseconds",
                    "type": "integer",
                    "minimum": 0,
                    "example": 4
                },
                "uri": {
                    "type": "string",
                    "example": "https://url_service"
                }
            }
        },
        "observability.SystemInfo": {
            "type": "object",
            "required": [
                "nom",
                "trigramme",
                "version"
            ],
            "properties": {
                "nom": {
                    "type": "string",
                    "example": "ROC NG"
                },
                "trigramme": {
                    "type": "string",
                    "example": "SCL"
                },
                "version": {
                    "type": "string",
                    "example": "2.3.1"
                }
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "arch": {
                    "type": "string"
                },
                "build_date": {
                    "type": "string"
                },
                "build_number": {
                    "type": "string"
                },
                "commit": {
                    "type": "string"
                },
                "dirty_build": {
                    "type": "boolean"
                },
                "go_version": {
                    "type": "string"
                },
                "os": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.2",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Observabilité - OpenAPI 3.1",
	Description:      "Points d'observabilité d'un système d'information : informations de gouvernance (/info) et état de santé (/health), en JSON ou en YAML.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
