package repository

import (
	"context"
	"fmt"

	"github.com/fauzanr/voicegate/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository executes typed select/insert operations against the
// users table.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository over the shared pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, email
        FROM users
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table serializes as [] and not null.
	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

// GetByID returns the user with the given id. A missing row surfaces as
// a wrapped pgx.ErrNoRows carrying the table name, which the sqlerr
// layer turns into a 404.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, name, email
        FROM users
        WHERE id = $1
    `, id)

	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("table:users: %w", err)
		}
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}

	return u, nil
}

// Create inserts a new user; the database assigns the id.
func (r *UserRepository) Create(ctx context.Context, name, email string) (*model.User, error) {
	var id int

	err := r.db.QueryRow(ctx, `
        INSERT INTO users (name, email)
        VALUES ($1, $2)
        RETURNING id
    `, name, email).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &model.User{ID: id, Name: name, Email: email}, nil
}
