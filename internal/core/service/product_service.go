package service

import (
	"context"

	"github.com/shopkart/commerce-api/internal/api/metrics"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// CatalogCache abstracts the listing cache (Redis). A failing cache degrades
// to direct repository reads.
type CatalogCache interface {
	GetList(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, bool)
	SetList(ctx context.Context, filter ports.ProductFilter, products []domain.Product)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type productService struct {
	repo  ports.ProductRepository
	cache CatalogCache
}

// NewProductService returns a ProductService backed by the repository with a
// read-through listing cache. cache may be nil.
func NewProductService(repo ports.ProductRepository, cache CatalogCache) ports.ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	filter = clampPaging(filter)

	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx, filter); ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, filter, products)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrProductNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// Search is uncached: query strings have too much cardinality to be worth
// keying on.
func (s *productService) Search(ctx context.Context, query string, page, pageSize int) ([]domain.Product, error) {
	filter := clampPaging(ports.ProductFilter{Query: query, Page: page, PageSize: pageSize})
	if filter.Query == "" {
		return []domain.Product{}, nil
	}
	return s.repo.List(ctx, filter)
}

func clampPaging(f ports.ProductFilter) ports.ProductFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f
}
