package domain

import (
	"strings"
	"time"
)

// Account models a registered customer. The password hash is opaque to every
// component except the password hasher and is never serialized.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the verified identity of the caller making a request,
// independent of how the account record is stored.
type Principal struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}

// CanonicalEmail folds an email address to the single comparable form used
// for uniqueness and lookup.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
