package ports

import (
	"context"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// PasswordHasher produces and verifies one-way, salted, adaptive password
// hashes. Hashing the same plaintext twice yields different outputs, both of
// which verify.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hashed. It returns false,
	// never an error, for any mismatch, malformed hash, or empty input.
	Verify(plaintext, hashed string) bool
}

// Claims are the fields carried inside a bearer token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies signed, time-bounded bearer tokens. The
// token format is an internal contract between codec instances sharing the
// same signing secret; no external consumer parses it.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	// Verify returns the claims, or one of domain.ErrTokenMalformed,
	// domain.ErrTokenSignature, domain.ErrTokenExpired.
	Verify(token string) (*Claims, error)
}

// IdentityResolver turns an inbound token into a verified principal. Any
// verification failure, including a valid-signature token for an account
// that no longer exists, resolves to domain.ErrUnauthenticated.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}
