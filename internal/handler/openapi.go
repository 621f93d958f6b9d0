package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/fauzanr/voicegate/internal/server"
)

// OpenAPIHandler serves the machine-readable API description and the
// browsable docs UI.
//
// The UI is a static HTML page (static/openapi.html) that loads a viewer
// from a CDN and points it at /openapi.json. The JSON document itself is
// assembled in code from the declared routes so it cannot drift from a
// hand-maintained file.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: NewHandler(s)}
}

// ServeDocument handles GET /openapi.json.
func (h *OpenAPIHandler) ServeDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, buildDocument())
}

// ServeOpenAPIUI reads static/openapi.html and serves it as HTML.
//
// Cache-Control is set to "no-cache" so clients do not reuse a stale
// docs page.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile("static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	return c.HTML(http.StatusOK, string(templateBytes))
}

type openAPIMap = map[string]interface{}

// buildDocument assembles the OpenAPI 3.0 description of every public
// route. Kept as one literal per path so adding an endpoint is a single
// self-contained block.
func buildDocument() openAPIMap {
	userSchema := openAPIMap{
		"type": "object",
		"properties": openAPIMap{
			"id":    openAPIMap{"type": "integer"},
			"name":  openAPIMap{"type": "string"},
			"email": openAPIMap{"type": "string", "format": "email"},
		},
		"required": []string{"id", "name", "email"},
	}

	return openAPIMap{
		"openapi": "3.0.3",
		"info": openAPIMap{
			"title":       "voicegate",
			"description": "User directory and voice-agent webhook API.",
			"version":     "1.0.0",
		},
		"paths": openAPIMap{
			"/api/users": openAPIMap{
				"get": openAPIMap{
					"summary":     "List users",
					"operationId": "listUsers",
					"responses": openAPIMap{
						"200": openAPIMap{
							"description": "All users, ordered by id",
							"content": openAPIMap{
								"application/json": openAPIMap{
									"schema": openAPIMap{
										"type":  "array",
										"items": openAPIMap{"$ref": "#/components/schemas/User"},
									},
								},
							},
						},
					},
				},
			},
			"/api/users/{id}": openAPIMap{
				"get": openAPIMap{
					"summary":     "Get a user by id",
					"operationId": "getUser",
					"parameters": []openAPIMap{
						{
							"name":     "id",
							"in":       "path",
							"required": true,
							"schema":   openAPIMap{"type": "integer"},
						},
					},
					"responses": openAPIMap{
						"200": openAPIMap{
							"description": "The requested user",
							"content": openAPIMap{
								"application/json": openAPIMap{
									"schema": openAPIMap{"$ref": "#/components/schemas/User"},
								},
							},
						},
						"400": openAPIMap{"description": "Non-numeric id"},
						"404": openAPIMap{"description": "No user with that id"},
					},
				},
			},
			"/api/user": openAPIMap{
				"post": openAPIMap{
					"summary":     "Create a user",
					"operationId": "createUser",
					"requestBody": openAPIMap{
						"required": true,
						"content": openAPIMap{
							"application/json": openAPIMap{
								"schema": openAPIMap{"$ref": "#/components/schemas/CreateUser"},
							},
						},
					},
					"responses": openAPIMap{
						"201": openAPIMap{
							"description": "The created user, with its assigned id",
							"content": openAPIMap{
								"application/json": openAPIMap{
									"schema": openAPIMap{"$ref": "#/components/schemas/User"},
								},
							},
						},
						"400": openAPIMap{"description": "Missing or invalid fields"},
					},
				},
			},
			"/elevenlabs-webhook": openAPIMap{
				"post": openAPIMap{
					"summary":     "Normalize call metadata into dynamic variables",
					"operationId": "handleCallInitiation",
					"requestBody": openAPIMap{
						"required": true,
						"content": openAPIMap{
							"application/json": openAPIMap{
								"schema": openAPIMap{"$ref": "#/components/schemas/WebhookPayload"},
							},
						},
					},
					"responses": openAPIMap{
						"200": openAPIMap{
							"description": "Normalized variables for the call session",
							"content": openAPIMap{
								"application/json": openAPIMap{
									"schema": openAPIMap{"$ref": "#/components/schemas/WebhookResult"},
								},
							},
						},
						"500": openAPIMap{"description": "Extraction failed"},
					},
				},
			},
			"/status": openAPIMap{
				"get": openAPIMap{
					"summary":     "Service and dependency health",
					"operationId": "checkHealth",
					"responses": openAPIMap{
						"200": openAPIMap{"description": "All checks healthy"},
						"503": openAPIMap{"description": "One or more checks failed"},
					},
				},
			},
		},
		"components": openAPIMap{
			"schemas": openAPIMap{
				"User": userSchema,
				"CreateUser": openAPIMap{
					"type": "object",
					"properties": openAPIMap{
						"name":  openAPIMap{"type": "string"},
						"email": openAPIMap{"type": "string", "format": "email"},
					},
					"required": []string{"name", "email"},
				},
				"WebhookPayload": openAPIMap{
					"type": "object",
					"properties": openAPIMap{
						"caller_id":     openAPIMap{"type": "string"},
						"agent_id":      openAPIMap{"type": "string"},
						"called_number": openAPIMap{"type": "string"},
						"call_sid":      openAPIMap{"type": "string"},
					},
					"required": []string{"caller_id", "agent_id", "called_number", "call_sid"},
				},
				"WebhookResult": openAPIMap{
					"type": "object",
					"properties": openAPIMap{
						"dynamic_variables": openAPIMap{
							"type": "object",
							"properties": openAPIMap{
								"callerId":     openAPIMap{"type": "string"},
								"agentId":      openAPIMap{"type": "string"},
								"calledNumber": openAPIMap{"type": "string"},
								"callSid":      openAPIMap{"type": "string"},
							},
						},
					},
				},
			},
		},
	}
}
