// Package model holds the domain types persisted by the repository layer.
package model

// User is a registered user record. ID is assigned by the database on
// insert and never supplied by clients.
type User struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
