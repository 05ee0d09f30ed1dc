package service

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopkart/commerce-api/internal/api/metrics"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// bcryptHasher implements ports.PasswordHasher on bcrypt. Each hash embeds a
// fresh random salt and the cost used to produce it, so the cost can be
// raised over time without breaking verification of older hashes.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt-backed hasher with the given work
// factor. Out-of-range costs fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("hash: empty password")
	}

	start := time.Now()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify recomputes using the salt and cost embedded in hashed and compares
// in constant time. bcrypt reports malformed hashes as errors, which collapse
// to false here.
func (h *bcryptHasher) Verify(plaintext, hashed string) bool {
	if plaintext == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
