package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fauzanr/voicegate/internal/handler"
)

// registerAPIRoutes maps the business endpoints: the user resource and
// the voice-platform webhook.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")
	api.GET("/users", h.Users.List())
	api.GET("/users/:id", h.Users.Get())
	api.POST("/user", h.Users.Create())

	// The webhook path is fixed by the platform's configuration and sits
	// outside the /api group.
	r.POST("/elevenlabs-webhook", h.Webhook.HandleCallInitiation())
}
