package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/frutech/auth-service/internal/api/metrics"
	"github.com/frutech/auth-service/internal/core/domain"
	"github.com/frutech/auth-service/internal/core/password"
	"github.com/frutech/auth-service/internal/core/ports"
)

// UserService implements account lifecycle on top of the repository.
// The repository owns the records; this service only adds hashing, id
// generation, and cache bookkeeping.
type UserService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	cache  ports.UserCache
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *password.Hasher, cache ports.UserCache, audit ports.AuditSink, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, audit: audit, log: log}
}

// Create registers a new account. The username must be unique; a
// duplicate surfaces as domain.ErrUserExists from the repository.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	userType := input.UserType
	if userType == "" {
		userType = domain.RoleUser
	}
	if !domain.ValidRole(userType) {
		return nil, domain.ErrInvalidUserType
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		UserType:     userType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Warn().Str("username", input.Username).Msg("signup with taken username")
		}
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user created")
	metrics.UsersCreatedTotal.WithLabelValues(created.UserType).Inc()
	s.record(domain.AuditEvent{
		Action:    domain.AuditUserCreated,
		Username:  created.Username,
		UserID:    created.ID,
		Success:   true,
		Timestamp: now,
	})
	return created, nil
}

// GetByID fetches an account, serving repeat reads from the cache.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, id); ok {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, user)
	}
	return user, nil
}

// Update mutates name and/or email. Username and id are immutable.
func (s *UserService) Update(ctx context.Context, id string, input ports.UserUpdate) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	s.record(domain.AuditEvent{
		Action:    domain.AuditUserUpdated,
		Username:  updated.Username,
		UserID:    id,
		Success:   true,
		Timestamp: time.Now().UTC(),
	})
	return updated, nil
}

// Delete removes the account. Tokens already issued for it stay valid
// until they expire; that staleness window is accepted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	s.record(domain.AuditEvent{
		Action:    domain.AuditUserDeleted,
		UserID:    id,
		Success:   true,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *UserService) record(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Enqueue(event)
	}
}
