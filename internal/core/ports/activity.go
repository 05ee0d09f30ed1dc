package ports

import (
	"context"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// ActivityInput is one auth-related event queued for asynchronous recording.
type ActivityInput struct {
	Email string
	Kind  domain.ActivityKind
	At    time.Time
}

// ActivityRepository persists account activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.AccountActivity) error
}

// ActivityService processes queued activity events.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
}
