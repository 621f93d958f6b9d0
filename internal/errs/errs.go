// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for invalid request fields or HTTPError for
// API responses) to ensure the client receives meaningful,
// actionable, and consistent error messages.
package errs
