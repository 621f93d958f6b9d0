package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fauzanr/voicegate/internal/middleware"
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/service"
	"github.com/fauzanr/voicegate/internal/validation"
)

// dynamicVariableExtractor is what the webhook handler needs from the
// webhook service. Kept narrow so tests can swap in a failing extractor
// to exercise the containment path.
type dynamicVariableExtractor interface {
	ExtractDynamicVariables(callerID, agentID, calledNumber, callSid string) (*service.DynamicVariables, error)
}

// WebhookHandler receives call-initiation callbacks from the voice-agent
// platform and answers with the variable set to inject into the session.
type WebhookHandler struct {
	Handler
	extractor dynamicVariableExtractor
}

func NewWebhookHandler(s *server.Server, webhook *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{Handler: NewHandler(s), extractor: webhook}
}

// WebhookRequest is the call metadata posted by the platform on inbound
// call setup. All four fields are required, opaque strings.
type WebhookRequest struct {
	CallerID     string `json:"caller_id" validate:"required"`
	AgentID      string `json:"agent_id" validate:"required"`
	CalledNumber string `json:"called_number" validate:"required"`
	CallSid      string `json:"call_sid" validate:"required"`
}

func (r *WebhookRequest) Validate() error {
	return validation.ValidateStruct(r)
}

// WebhookResponse wraps the normalized variables in the envelope the
// platform expects.
type WebhookResponse struct {
	DynamicVariables *service.DynamicVariables `json:"dynamic_variables"`
}

// HandleCallInitiation handles POST /elevenlabs-webhook.
//
// Unlike the other endpoints this one does not propagate failures to the
// global error handler: the platform retries on anything but a clean
// shape, so extraction failures are logged and collapsed into an opaque
// 500 body right here.
func (h *WebhookHandler) HandleCallInitiation() echo.HandlerFunc {
	return func(c echo.Context) error {
		log := middleware.GetLogger(c)

		req := new(WebhookRequest)
		if err := validation.BindAndValidate(c, req); err != nil {
			log.Warn().Err(err).Msg("Webhook payload failed validation.")
			return err
		}

		vars, err := h.extractor.ExtractDynamicVariables(req.CallerID, req.AgentID, req.CalledNumber, req.CallSid)
		if err != nil {
			log.Error().Err(err).
				Str("agent_id", req.AgentID).
				Str("call_sid", req.CallSid).
				Msg("Dynamic variable extraction failed.")

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		log.Info().
			Str("agent_id", req.AgentID).
			Str("call_sid", req.CallSid).
			Msg("Webhook call initiation handled.")

		return c.JSON(http.StatusOK, WebhookResponse{DynamicVariables: vars})
	}
}
