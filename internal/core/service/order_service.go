package service

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type orderService struct {
	repo ports.OrderRepository
}

// NewOrderService returns an OrderService that only ever exposes orders to
// their owning account.
func NewOrderService(repo ports.OrderRepository) ports.OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) List(ctx context.Context, accountID string, filter ports.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && !domain.ValidOrderStatus(filter.Status) {
		return nil, domain.NewValidationError("status", "is not a valid order status")
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	return s.repo.ListByAccount(ctx, accountID, filter)
}

// Get hides ownership: an order belonging to a different account reports not
// found, never forbidden.
func (s *orderService) Get(ctx context.Context, accountID, id string) (*domain.Order, error) {
	if id == "" {
		return nil, domain.ErrOrderNotFound
	}
	return s.repo.FindByID(ctx, accountID, id)
}
