package ports

import (
	"context"

	"github.com/frutech/auth-service/internal/core/domain"
)

// UserRepository defines persistence for directory accounts. It is the
// sole owner of the User lifecycle; services treat it as read-mostly.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UserUpdate carries the mutable account fields. A nil field means
// "leave unchanged"; username and id are immutable by design.
type UserUpdate struct {
	Name  *string
	Email *string
}
