package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

type stubWishlistRepo struct {
	items []domain.WishlistItem
}

func (r *stubWishlistRepo) Add(_ context.Context, item *domain.WishlistItem) error {
	for _, it := range r.items {
		if it.AccountID == item.AccountID && it.ProductID == item.ProductID {
			return domain.ErrWishlistDuplicate
		}
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *stubWishlistRepo) Remove(_ context.Context, accountID, productID string) error {
	for i, it := range r.items {
		if it.AccountID == accountID && it.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrWishlistNotFound
}

func (r *stubWishlistRepo) ListByAccount(_ context.Context, accountID string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, it := range r.items {
		if it.AccountID == accountID {
			out = append(out, it)
		}
	}
	return out, nil
}

func TestWishlistService_AddAndList(t *testing.T) {
	products := &stubProductRepo{products: catalogFixture()}
	svc := NewWishlistService(&stubWishlistRepo{}, products)

	if err := svc.Add(context.Background(), "acc-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := svc.Add(context.Background(), "acc-1", "p3"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	entries, err := svc.List(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Product == nil || entries[0].Product.Name != "Wireless Headphones" {
		t.Fatalf("first entry product not resolved: %+v", entries[0])
	}
	if entries[0].AddedAt.IsZero() {
		t.Fatalf("added-at not set")
	}
}

func TestWishlistService_AddUnknownProduct(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{}, &stubProductRepo{})

	err := svc.Add(context.Background(), "acc-1", "no-such-product")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestWishlistService_AddDuplicate(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{}, &stubProductRepo{products: catalogFixture()})

	if err := svc.Add(context.Background(), "acc-1", "p1"); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := svc.Add(context.Background(), "acc-1", "p1"); !errors.Is(err, domain.ErrWishlistDuplicate) {
		t.Fatalf("expected ErrWishlistDuplicate, got %v", err)
	}
}

func TestWishlistService_ListKeepsOrphanedEntries(t *testing.T) {
	products := &stubProductRepo{products: catalogFixture()}
	wishlist := &stubWishlistRepo{items: []domain.WishlistItem{
		{AccountID: "acc-1", ProductID: "p1", AddedAt: time.Now().UTC()},
		{AccountID: "acc-1", ProductID: "deleted-product", AddedAt: time.Now().UTC()},
	}}
	svc := NewWishlistService(wishlist, products)

	entries, err := svc.List(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[1].Product != nil {
		t.Fatalf("orphaned entry must carry a nil product")
	}
}

func TestWishlistService_ListEmpty(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{}, &stubProductRepo{})

	entries, err := svc.List(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestWishlistService_Remove(t *testing.T) {
	svc := NewWishlistService(&stubWishlistRepo{}, &stubProductRepo{products: catalogFixture()})

	if err := svc.Add(context.Background(), "acc-1", "p1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(context.Background(), "acc-1", "p1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := svc.Remove(context.Background(), "acc-1", "p1"); !errors.Is(err, domain.ErrWishlistNotFound) {
		t.Fatalf("expected ErrWishlistNotFound, got %v", err)
	}
}
