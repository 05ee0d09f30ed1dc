package ports

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// AuthResult is the outcome of a successful signup or login.
type AuthResult struct {
	Token   string
	Account *domain.Account
}

// AuthService orchestrates signup, login, and principal resolution.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, token string) (*domain.Account, error)
	// Logout always succeeds: sessions are stateless and no server-side
	// invalidation is performed, so a valid token remains usable until
	// natural expiry.
	Logout(ctx context.Context) error
}
