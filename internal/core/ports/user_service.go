package ports

import (
	"context"

	"github.com/frutech/auth-service/internal/core/domain"
)

// UserService manages account lifecycle.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the signup fields. UserType defaults to
// "user" when empty.
type CreateUserInput struct {
	Username string
	Password string
	Name     string
	Email    string
	UserType string
}
