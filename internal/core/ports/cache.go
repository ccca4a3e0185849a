package ports

import (
	"context"

	"github.com/frutech/auth-service/internal/core/domain"
)

// UserCache is a read-through cache for user profiles. Cached copies
// never include the password hash, so login always goes to the
// repository.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, id string)
}
