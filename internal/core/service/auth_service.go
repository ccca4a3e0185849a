package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/frutech/auth-service/internal/api/metrics"
	"github.com/frutech/auth-service/internal/core/domain"
	"github.com/frutech/auth-service/internal/core/password"
	"github.com/frutech/auth-service/internal/core/ports"
	"github.com/frutech/auth-service/internal/core/token"
)

// TokenType is the label returned with every issued credential.
const TokenType = "bearer"

// AuthService implements login and token verification. It holds no
// mutable state; the codec secret and hasher cost are fixed at startup,
// so concurrent calls need no coordination.
type AuthService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	codec  *token.Codec
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, codec *token.Codec, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, audit: audit, log: log}
}

// Login authenticates the username/password pair and issues a token.
// A missing user and a wrong password both come back as
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (*ports.LoginResult, error) {
	if username == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", username).Msg("login attempt for unknown username")
			s.recordLogin(username, "", false, "unknown_username")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("login attempt with wrong password")
		s.recordLogin(username, user.ID, false, "wrong_password")
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("token issuance failed")
		return nil, err
	}

	s.log.Info().Str("username", username).Str("user_id", user.ID).Msg("user authenticated")
	s.recordLogin(username, user.ID, true, "")

	return &ports.LoginResult{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresIn:   int64(s.codec.TTL().Seconds()),
		UserType:    user.UserType,
	}, nil
}

// Verify parses tokenString and reports whether it is still good. All
// failure kinds collapse into Valid=false; the kind stays internal.
func (s *AuthService) Verify(ctx context.Context, tokenString string) *ports.VerifyResult {
	claims, err := s.codec.Parse(tokenString)
	if err != nil {
		reason := verifyReason(err)
		s.log.Warn().Err(err).Msg("token rejected")
		metrics.TokenVerificationsTotal.WithLabelValues(reason).Inc()
		s.record(domain.AuditEvent{
			Action:    domain.AuditTokenVerify,
			Success:   false,
			Reason:    reason,
			Timestamp: time.Now().UTC(),
		})
		return &ports.VerifyResult{Valid: false, Reason: err}
	}

	metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
	return &ports.VerifyResult{Valid: true, Claims: claims}
}

func (s *AuthService) recordLogin(username, userID string, success bool, reason string) {
	if success {
		metrics.LoginsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
	}
	s.record(domain.AuditEvent{
		Action:    domain.AuditLogin,
		Username:  username,
		UserID:    userID,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

func (s *AuthService) record(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Enqueue(event)
	}
}

// verifyReason maps a token failure to its metrics/audit label.
func verifyReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
