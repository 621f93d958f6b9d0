package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestNewBadRequestError(t *testing.T) {
	fieldErrors := []FieldError{{Field: "email", Error: "is required"}}

	err := NewBadRequestError("Validation failed", true, nil, fieldErrors)

	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, err.Override)
	assert.Equal(t, fieldErrors, err.Errors)
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"

	err := NewBadRequestError("A User with this Email already exists", true, &code, nil)
	assert.Equal(t, "USER_ALREADY_EXISTS", err.Code)
}

func TestNewInternalServerError_IsOpaque(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.False(t, err.Override)
}

func TestHTTPError_ErrorsAs_ThroughWrapping(t *testing.T) {
	orig := NewNotFoundError("User not found", true, nil)
	wrapped := errors.Wrap(orig, "fetching user")

	var httpErr *HTTPError
	require.ErrorAs(t, wrapped, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestHTTPError_WithMessage(t *testing.T) {
	orig := NewNotFoundError("Resource not found", false, nil)
	copied := orig.WithMessage("User not found")

	assert.Equal(t, "User not found", copied.Message)
	assert.Equal(t, orig.Code, copied.Code)
	assert.Equal(t, "Resource not found", orig.Message)
}
