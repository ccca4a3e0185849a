package ports

import (
	"context"

	"github.com/frutech/auth-service/internal/core/token"
)

// AuthService issues and validates bearer credentials.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Verify(ctx context.Context, tokenString string) *VerifyResult
}

// LoginResult is the login response contract: the signed token, its
// type label, seconds until expiry, and the account role.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserType    string `json:"user_type"`
}

// VerifyResult collapses every token failure into a single Valid flag.
// Reason retains the specific failure kind for logs and metrics; it
// must never be surfaced to callers.
type VerifyResult struct {
	Valid  bool
	Claims *token.Claims
	Reason error
}
