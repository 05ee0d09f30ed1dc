package ports

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// AccountRepository is the durable mapping from canonical email to account
// record. Uniqueness is enforced by the store itself: under concurrent Create
// calls with the same canonical email exactly one succeeds and the rest
// return domain.ErrDuplicateEmail, regardless of any prior existence check.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// ExistsByEmail is a fast advisory pre-check only; callers must not rely
	// on it to prevent duplicate races.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
