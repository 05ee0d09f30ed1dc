package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopkart/commerce-api/internal/api/metrics"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the worker-side processor for queued account
// activity events.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists one activity record. Failures are counted and logged;
// they never propagate back to the request that produced the event.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	if in.Email == "" || in.Kind == "" {
		return fmt.Errorf("activity: incomplete event")
	}

	err := s.repo.Insert(ctx, &domain.AccountActivity{
		Email: in.Email,
		Kind:  in.Kind,
		At:    in.At,
	})
	if err != nil {
		metrics.ActivityErrorsTotal.Inc()
		s.log.Error().Err(err).
			Str("email", in.Email).
			Str("kind", string(in.Kind)).
			Msg("activity insert failed")
		return err
	}
	return nil
}
