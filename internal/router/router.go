// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fauzanr/voicegate/internal/handler"
	"github.com/fauzanr/voicegate/internal/middleware"
)

// New builds the Echo instance: middleware chain first, then routes.
//
// Middleware order matters:
//  1. RequestID: everything downstream logs and traces with it.
//  2. New Relic transaction: started before any logging so the
//     request-scoped logger can attach trace metadata.
//  3. ContextEnhancer: request-scoped zerolog logger into context.
//  4. Tracing attributes: enriches the transaction started in (2).
//  5. CORS / request logging / recover / security headers.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
