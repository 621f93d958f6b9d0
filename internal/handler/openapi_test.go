package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeDocument(t *testing.T) {
	e := echo.New()
	h := NewOpenAPIHandler(nil)
	e.GET("/openapi.json", h.ServeDocument)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestBuildDocument_CoversAllRoutes(t *testing.T) {
	doc := buildDocument()

	paths, ok := doc["paths"].(openAPIMap)
	require.True(t, ok)

	for _, path := range []string{
		"/api/users",
		"/api/users/{id}",
		"/api/user",
		"/elevenlabs-webhook",
		"/status",
	} {
		assert.Contains(t, paths, path)
	}

	schemas := doc["components"].(openAPIMap)["schemas"].(openAPIMap)
	for _, schema := range []string{"User", "CreateUser", "WebhookPayload", "WebhookResult"} {
		assert.Contains(t, schemas, schema)
	}
}

func TestBuildDocument_WebhookVariablesAreCamelCase(t *testing.T) {
	doc := buildDocument()

	result := doc["components"].(openAPIMap)["schemas"].(openAPIMap)["WebhookResult"].(openAPIMap)
	vars := result["properties"].(openAPIMap)["dynamic_variables"].(openAPIMap)["properties"].(openAPIMap)

	for _, key := range []string{"callerId", "agentId", "calledNumber", "callSid"} {
		assert.Contains(t, vars, key)
	}
}
