package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frutech/auth-service/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache is a read-through cache for user profiles.
// Key format: user:<id>
//
// The cached document deliberately omits the password hash, so a login
// can never be served from here. Cache failures degrade to repository
// reads; they are never fatal.
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// cachedUser is the wire form stored in Redis. No password hash.
type cachedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get returns the cached profile for id, or ok=false on miss or error.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, false
	}

	return &domain.User{
		ID:        cu.ID,
		Username:  cu.Username,
		Name:      cu.Name,
		Email:     cu.Email,
		UserType:  cu.UserType,
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}, true
}

// Set stores the profile for cacheTTL. Errors are dropped; the next
// read falls through to the repository.
func (c *UserCache) Set(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  user.UserType,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(user.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached profile after a mutation.
func (c *UserCache) Invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}
