package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frutech/auth-service/internal/core/domain"
	"github.com/frutech/auth-service/internal/core/password"
	"github.com/frutech/auth-service/internal/core/ports"
)

type stubUserCache struct {
	entries     map[string]*domain.User
	invalidated []string
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{entries: make(map[string]*domain.User)}
}

func (c *stubUserCache) Get(_ context.Context, id string) (*domain.User, bool) {
	u, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

func (c *stubUserCache) Set(_ context.Context, user *domain.User) {
	c.entries[user.ID] = cloneUser(user)
}

func (c *stubUserCache) Invalidate(_ context.Context, id string) {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

func newUserService(repo *stubUserRepo, cache ports.UserCache) *UserService {
	return NewUserService(repo, password.NewHasher(bcrypt.MinCost), cache, nil, zerolog.Nop())
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "joao",
		Password: "senha123",
		Name:     "João Silva",
		Email:    "joao@example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.UserType != domain.RoleUser {
		t.Fatalf("expected default user type, got %s", user.UserType)
	}
	if user.PasswordHash == "senha123" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	input := ports.CreateUserInput{Username: "bob", Password: "pass12", Name: "Bob", Email: "bob@example.com"}
	first, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The first account is unaffected.
	kept, err := svc.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("first user lost after conflict: %v", err)
	}
	if kept.Username != "bob" {
		t.Fatalf("unexpected surviving user: %+v", kept)
	}
}

func TestUserService_Create_UniqueIDs(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	a, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "a", Password: "pass12", Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create a failed: %v", err)
	}
	b, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "b", Password: "pass12", Name: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create b failed: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both got %s", a.ID)
	}
}

func TestUserService_Create_InvalidUserType(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "eve", Password: "pass12", Name: "Eve", Email: "eve@example.com", UserType: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidUserType) {
		t.Fatalf("expected ErrInvalidUserType, got %v", err)
	}
}

func TestUserService_GetByID_CacheFlow(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newUserService(repo, cache)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "carol", Password: "pass12", Name: "Carol", Email: "carol@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// First read misses the cache and hits the repository.
	repo.findCalls = 0
	got, err := svc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected one repository read, got %d", repo.findCalls)
	}
	if got.Username != "carol" {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Second read is served from the cache.
	if _, err := svc.GetByID(context.Background(), user.ID); err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected cached read, repository hit %d times", repo.findCalls)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_PartialAndInvalidate(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newUserService(repo, cache)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "dora", Password: "pass12", Name: "Dora", Email: "dora@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newName := "Dora Márquez"
	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Email != "dora@example.com" {
		t.Fatalf("email must be unchanged, got %s", updated.Email)
	}
	if updated.Username != "dora" || updated.ID != user.ID {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != user.ID {
		t.Fatalf("expected cache invalidation for %s, got %v", user.ID, cache.invalidated)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	name := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.UserUpdate{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newUserService(repo, cache)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "gone", Password: "pass12", Name: "Gone", Email: "gone@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on double delete, got %v", err)
	}
}
