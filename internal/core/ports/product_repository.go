package ports

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Brand    string
	Query    string
	InStock  *bool
	Page     int
	PageSize int
}

// ProductRepository is read-mostly catalog storage.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	InsertMany(ctx context.Context, products []domain.Product) error
	Count(ctx context.Context) (int64, error)
}

// ProductService exposes the catalog read paths.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string, page, pageSize int) ([]domain.Product, error)
}
