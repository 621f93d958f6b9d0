package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanr/voicegate/internal/config"
	"github.com/fauzanr/voicegate/internal/handler"
	"github.com/fauzanr/voicegate/internal/middleware"
	"github.com/fauzanr/voicegate/internal/model"
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/service"
)

// emptyStore satisfies service.UserStore without a database.
type emptyStore struct{}

func (emptyStore) List(context.Context) ([]model.User, error) { return []model.User{}, nil }
func (emptyStore) GetByID(context.Context, int) (*model.User, error) {
	return nil, context.Canceled
}
func (emptyStore) Create(context.Context, string, string) (*model.User, error) {
	return nil, context.Canceled
}

// newTestRouter assembles the full middleware chain and route table the
// way main does, minus the database.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &log,
	}

	services := &service.Services{
		Users:   service.NewUserService(emptyStore{}),
		Webhook: service.NewWebhookService(),
	}

	return New(handler.NewHandlers(srv, services), middleware.NewMiddlewares(srv))
}

func TestRouter_Banner(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Contains(t, rec.Body.String(), "voicegate")
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{
		"code": "NOT_FOUND",
		"message": "Route not found",
		"status": 404,
		"override": false,
		"errors": null
	}`, rec.Body.String())
}

func TestRouter_RequestIDEchoedBack(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RequestIDGenerated(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_UsersThroughFullChain(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_OpenAPIDocument(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi"`)
}
