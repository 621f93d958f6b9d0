package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanr/voicegate/internal/errs"
	"github.com/fauzanr/voicegate/internal/middleware"
	"github.com/fauzanr/voicegate/internal/service"
)

// failingExtractor always errors, to exercise the containment path.
type failingExtractor struct{}

func (failingExtractor) ExtractDynamicVariables(_, _, _, _ string) (*service.DynamicVariables, error) {
	return nil, errors.New("extraction blew up")
}

func newWebhookTestServer(extractor dynamicVariableExtractor) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(nil).GlobalErrorHandler

	h := &WebhookHandler{Handler: NewHandler(nil), extractor: extractor}
	e.POST("/elevenlabs-webhook", h.HandleCallInitiation())

	return e
}

func postWebhook(t *testing.T, e *echo.Echo, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/elevenlabs-webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestWebhook_NormalizesCallerID(t *testing.T) {
	e := newWebhookTestServer(service.NewWebhookService())

	rec := postWebhook(t, e, `{
		"caller_id": "+15551234567",
		"agent_id": "A1",
		"called_number": "+15559876543",
		"call_sid": "CA123"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	// caller_id loses its country code; called_number keeps it.
	assert.JSONEq(t, `{
		"dynamic_variables": {
			"callerId": "5551234567",
			"agentId": "A1",
			"calledNumber": "+15559876543",
			"callSid": "CA123"
		}
	}`, rec.Body.String())
}

func TestWebhook_ShortCallerIDUnchanged(t *testing.T) {
	e := newWebhookTestServer(service.NewWebhookService())

	rec := postWebhook(t, e, `{
		"caller_id": "123",
		"agent_id": "A1",
		"called_number": "+15559876543",
		"call_sid": "CA123"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DynamicVariables service.DynamicVariables `json:"dynamic_variables"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "123", body.DynamicVariables.CallerID)
}

func TestWebhook_MissingFields(t *testing.T) {
	e := newWebhookTestServer(service.NewWebhookService())

	rec := postWebhook(t, e, `{"caller_id": "+15551234567"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 3)

	var fields []string
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"agentid", "callednumber", "callsid"}, fields)
}

func TestWebhook_MalformedJSON(t *testing.T) {
	e := newWebhookTestServer(service.NewWebhookService())

	rec := postWebhook(t, e, `{"caller_id": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_ExtractionFailureContained(t *testing.T) {
	e := newWebhookTestServer(failingExtractor{})

	rec := postWebhook(t, e, `{
		"caller_id": "+15551234567",
		"agent_id": "A1",
		"called_number": "+15559876543",
		"call_sid": "CA123"
	}`)

	// The failure is contained in the handler: opaque 500 body, no
	// error detail, not the global error schema.
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
