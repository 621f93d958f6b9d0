package repository

import (
	"github.com/fauzanr/voicegate/internal/server"
)

// Repositories is a container for all repository instances, wired once
// and handed to the service layer.
type Repositories struct {
	Users *UserRepository
}

// NewRepositories constructs the repository container from the shared
// application container (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
	}
}
