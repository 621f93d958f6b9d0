package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fauzanr/voicegate/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic:
// the liveness banner, health status, API documentation, and static
// assets backing the docs UI.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Plain-text liveness banner.
	r.GET("/", h.Health.Banner)

	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Machine-readable API description, assembled from the declared routes.
	r.GET("/openapi.json", h.OpenAPI.ServeDocument)

	// Docs UI (serves openapi.html, which loads the viewer from a CDN).
	r.GET("/fp", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/fp/*", h.OpenAPI.ServeOpenAPIUI)

	// Serve all files from ./static at /static/* for docs assets.
	r.Static("/static", "static")
}
