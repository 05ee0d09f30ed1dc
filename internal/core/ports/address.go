package ports

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// AddressInput carries the writable fields of an address-book entry.
type AddressInput struct {
	Type        string
	Name        string
	Phone       string
	AddressLine string
	City        string
	State       string
	Pincode     string
	IsDefault   bool
}

// AddressRepository stores address-book entries scoped by account.
type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) (*domain.Address, error)
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, accountID, id string) error
	FindByID(ctx context.Context, accountID, id string) (*domain.Address, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Address, error)
	// ClearDefault unsets the default flag on every address of the account.
	ClearDefault(ctx context.Context, accountID string) error
}

// AddressService manages the caller's address book.
type AddressService interface {
	List(ctx context.Context, accountID string) ([]domain.Address, error)
	Create(ctx context.Context, accountID string, in AddressInput) (*domain.Address, error)
	Update(ctx context.Context, accountID, id string, in AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, accountID, id string) error
}
