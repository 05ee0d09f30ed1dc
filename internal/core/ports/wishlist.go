package ports

import (
	"context"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// WishlistRepository stores account→product bookmarks. Add enforces one
// entry per (account, product) pair atomically.
type WishlistRepository interface {
	Add(ctx context.Context, item *domain.WishlistItem) error
	Remove(ctx context.Context, accountID, productID string) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.WishlistItem, error)
}

// WishlistEntry is a wishlist item joined with its product, resolved by an
// explicit eager query.
type WishlistEntry struct {
	ProductID string          `json:"product_id"`
	AddedAt   time.Time       `json:"added_at"`
	Product   *domain.Product `json:"product,omitempty"`
}

// WishlistService manages the caller's wishlist.
type WishlistService interface {
	List(ctx context.Context, accountID string) ([]WishlistEntry, error)
	Add(ctx context.Context, accountID, productID string) error
	Remove(ctx context.Context, accountID, productID string) error
}
