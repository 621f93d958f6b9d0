package handler

import (
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Users   *UserHandler    // user CRUD endpoints
	Webhook *WebhookHandler // inbound voice-platform webhook
	Health  *HealthHandler  // liveness banner + dependency health
	OpenAPI *OpenAPIHandler // API documentation (OpenAPI spec / docs UI)
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:   NewUserHandler(s, services.Users),
		Webhook: NewWebhookHandler(s, services.Webhook),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
