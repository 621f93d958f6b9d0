package handler

import (
	"time"

	"github.com/fauzanr/voicegate/internal/middleware"
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger, and
// db through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning the struct by value is
// fine: it only contains a pointer field, so copies still point at the
// same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// validatablePtr constrains Req to pointer-to-T types whose pointer form
// implements validation.Validatable. The pipeline instantiates a fresh T
// per request, so request structs are never shared between requests.
type validatablePtr[T any] interface {
	*T
	validation.Validatable
}

// handleRequest is the shared execution pipeline for all typed handlers.
// It centralizes:
//
//   - request binding + validation
//   - structured logging (with request context)
//   - New Relic tracing attributes and error reporting
//   - timing metrics (validation duration, handler duration, total)
//   - JSON response writing
func handleRequest[T any, Req validatablePtr[T]](
	c echo.Context,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()
	route := c.Path()

	// Transaction is set by the New Relic echo middleware; nil when
	// New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	// Context-enhanced logger already carries request_id/method/path/ip.
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	req := Req(new(T))

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed endpoint function with validation, error handling,
// logging, metrics, and tracing, returning an echo.HandlerFunc that can
// be registered directly on routes.
//
// Usage:
//
//	router.POST("/x", handler.Handle(h, myHandlerFn, http.StatusCreated))
//
// where myHandlerFn is func(echo.Context, *MyRequest) (Res, error).
func Handle[Res any, T any, Req validatablePtr[T]](
	h Handler,
	handler func(c echo.Context, req Req) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[T, Req](c, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}
