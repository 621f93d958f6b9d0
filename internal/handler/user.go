package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fauzanr/voicegate/internal/model"
	"github.com/fauzanr/voicegate/internal/server"
	"github.com/fauzanr/voicegate/internal/service"
	"github.com/fauzanr/voicegate/internal/validation"
)

// UserHandler exposes the user resource over HTTP.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

// ListUsersRequest carries no parameters; it exists so the listing endpoint
// runs through the same validated pipeline as everything else.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// GetUserRequest identifies a single user by its path parameter.
type GetUserRequest struct {
	ID int `param:"id"`
}

func (r *GetUserRequest) Validate() error {
	return validation.ValidateStruct(r)
}

// CreateUserRequest is the JSON body accepted when creating a user.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r)
}

// List handles GET /api/users.
func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListUsersRequest) ([]model.User, error) {
		return h.users.List(c.Request().Context())
	}, http.StatusOK)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetUserRequest) (*model.User, error) {
		return h.users.GetByID(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

// Create handles POST /api/user.
func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateUserRequest) (*model.User, error) {
		return h.users.Create(c.Request().Context(), req.Name, req.Email)
	}, http.StatusCreated)
}
