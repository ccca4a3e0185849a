package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frutech/auth-service/internal/core/domain"
)

const defaultTTL = 30 * time.Minute

// Claims is the payload signed into every access token. Subject carries
// the username; IssuedAt and ExpiresAt are stamped at issuance.
type Claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 access tokens. The secret and TTL are
// fixed at construction; any replica holding the same secret verifies
// tokens issued here.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec using the given signing secret and token
// lifetime. A non-positive ttl falls back to 30 minutes.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a fresh token for user with iat=now and exp=now+TTL.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		UserID:   user.ID,
		UserType: user.UserType,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and freshness of tokenString and returns
// the embedded claims. Failures map onto the domain token errors:
// ErrTokenExpired, ErrTokenSignatureInvalid, ErrTokenMalformed.
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
