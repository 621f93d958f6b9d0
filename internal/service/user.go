package service

import (
	"context"

	"github.com/fauzanr/voicegate/internal/model"
)

// UserStore is the storage boundary the user service depends on. It is
// satisfied by repository.UserRepository; tests supply an in-memory fake.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, name, email string) (*model.User, error)
}

// UserService exposes user operations to the HTTP layer. The operations
// here are thin pass-throughs; consistency is delegated entirely to the
// database (every operation is a single statement).
type UserService struct {
	store UserStore
}

// NewUserService constructs a UserService over the given store.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns every user currently in storage, ordered by id.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.List(ctx)
}

// GetByID returns the user with the given id. Storage-layer not-found
// errors propagate unchanged so the error funnel can map them to a 404.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists a new user and returns it with its assigned id.
func (s *UserService) Create(ctx context.Context, name, email string) (*model.User, error) {
	return s.store.Create(ctx, name, email)
}
