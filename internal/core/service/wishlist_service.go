package service

import (
	"context"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type wishlistService struct {
	wishlist ports.WishlistRepository
	products ports.ProductRepository
}

// NewWishlistService returns a WishlistService joining wishlist items with
// their catalog products.
func NewWishlistService(wishlist ports.WishlistRepository, products ports.ProductRepository) ports.WishlistService {
	return &wishlistService{wishlist: wishlist, products: products}
}

// List returns the account's wishlist with products resolved by one eager
// batch query. Entries whose product has been removed from the catalog are
// kept with a nil Product.
func (s *wishlistService) List(ctx context.Context, accountID string) ([]ports.WishlistEntry, error) {
	items, err := s.wishlist.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []ports.WishlistEntry{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	entries := make([]ports.WishlistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, ports.WishlistEntry{
			ProductID: it.ProductID,
			AddedAt:   it.AddedAt,
			Product:   byID[it.ProductID],
		})
	}
	return entries, nil
}

func (s *wishlistService) Add(ctx context.Context, accountID, productID string) error {
	// Fail fast on unknown products so the wishlist never references
	// entries that were never in the catalog.
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	return s.wishlist.Add(ctx, &domain.WishlistItem{
		AccountID: accountID,
		ProductID: productID,
		AddedAt:   time.Now().UTC(),
	})
}

func (s *wishlistService) Remove(ctx context.Context, accountID, productID string) error {
	return s.wishlist.Remove(ctx, accountID, productID)
}
