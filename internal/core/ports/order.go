package ports

import (
	"context"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// OrderFilter narrows an order listing for one account.
type OrderFilter struct {
	Status   domain.OrderStatus
	Page     int
	PageSize int
}

// OrderRepository stores orders scoped by account.
type OrderRepository interface {
	ListByAccount(ctx context.Context, accountID string, filter OrderFilter) ([]domain.Order, error)
	FindByID(ctx context.Context, accountID, id string) (*domain.Order, error)
}

// OrderService exposes order history to its owning account.
type OrderService interface {
	List(ctx context.Context, accountID string, filter OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, accountID, id string) (*domain.Order, error)
}
