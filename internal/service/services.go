package service

import (
	"github.com/fauzanr/voicegate/internal/repository"
	"github.com/fauzanr/voicegate/internal/server"
)

// Services is a container that groups all business-layer services.
type Services struct {
	Users   *UserService
	Webhook *WebhookService
}

// NewServices constructs the service container on top of the repository
// container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:   NewUserService(repos.Users),
		Webhook: NewWebhookService(),
	}, nil
}
