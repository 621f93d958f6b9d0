package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanr/voicegate/internal/errs"
)

type signupPayload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func (p *signupPayload) Validate() error {
	return ValidateStruct(p)
}

type rejectAllPayload struct{}

func (p *rejectAllPayload) Validate() error {
	return CustomValidationErrors{
		{Field: "name", Message: "is taken"},
	}
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newJSONContext(t, `{"name": "Ada", "email": "ada@example.com"}`)

	payload := new(signupPayload)
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "Ada", payload.Name)
	assert.Equal(t, "ada@example.com", payload.Email)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newJSONContext(t, `{"name": `)

	err := BindAndValidate(c, new(signupPayload))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"name": "A", "email": "nope"}`)

	err := BindAndValidate(c, new(signupPayload))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must be at least 2 characters", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestBindAndValidate_CustomValidationErrors(t *testing.T) {
	c := newJSONContext(t, `{}`)

	err := BindAndValidate(c, new(rejectAllPayload))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "is taken", httpErr.Errors[0].Error)
}
