package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanr/voicegate/internal/errs"
)

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	orig := errs.NewNotFoundError("User not found", true, nil)

	got := HandleError(orig)
	assert.Same(t, orig, got)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:           "23505",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23502",
		TableName:  "users",
		ColumnName: "email",
	}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23503",
		TableName:  "users",
		ColumnName: "account_id",
	}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Account does not exist", httpErr.Message)
}

func TestHandleError_UnknownPgErrorIsOpaque(t *testing.T) {
	err := &pgconn.PgError{
		Code:    "57014", // query_canceled
		Message: "canceling statement due to statement timeout",
	}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "statement timeout")
}

func TestHandleError_NoRowsWithTablePrefix(t *testing.T) {
	err := fmt.Errorf("table:users: %w", pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(err), &httpErr)

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_BareNoRows(t *testing.T) {
	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(pgx.ErrNoRows), &httpErr)

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_UnknownErrorIs500(t *testing.T) {
	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(errors.New("connection reset")), &httpErr)

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"users_email_key", "email"},
		{"users_email_ukey", "email"},
		{"unique_users_email", "email"},
		{"some_random_index", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint), "constraint %q", tt.constraint)
	}
}
