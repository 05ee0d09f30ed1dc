package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// clockSkew is the tolerated window around expiry checks.
const clockSkew = 30 * time.Second

// hmacTokenCodec implements ports.TokenCodec with HS256-signed JWTs. The
// signing secret is process-wide state, set once at construction.
type hmacTokenCodec struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenCodec returns a codec signing and verifying with the given secret.
func NewTokenCodec(secret string) ports.TokenCodec {
	return &hmacTokenCodec{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(clockSkew),
			jwt.WithExpirationRequired(),
		),
	}
}

func (c *hmacTokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify is pure: it re-derives the signature over the received payload,
// checks the validity window with clockSkew leeway, and maps every failure
// onto one of the typed domain token errors.
func (c *hmacTokenCodec) Verify(token string) (*ports.Claims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := c.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, mapTokenError(err)
	}

	out := &ports.Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// mapTokenError converts jwt/v5 errors into the closed set of domain token
// errors. Unknown verification failures count as signature mismatches, never
// as success.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrTokenSignature, err)
	}
}
