package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

// identityResolver implements ports.IdentityResolver. It is stateless: no
// caching of resolved principals, every call verifies independently.
type identityResolver struct {
	codec    ports.TokenCodec
	accounts ports.AccountRepository
	activity ActivityRecorder
}

// NewIdentityResolver wires a token codec and account store into a resolver.
// activity may be nil.
func NewIdentityResolver(codec ports.TokenCodec, accounts ports.AccountRepository, activity ActivityRecorder) ports.IdentityResolver {
	return &identityResolver{codec: codec, accounts: accounts, activity: activity}
}

func (r *identityResolver) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrUnauthenticated)
	}

	claims, err := r.codec.Verify(token)
	if err != nil {
		// Keep the token subkind in the chain for diagnostics; callers
		// match on ErrUnauthenticated.
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	account, err := r.accounts.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// A valid-signature token for a vanished account is an
			// authentication failure, not a server fault.
			if r.activity != nil {
				r.activity.Enqueue(ports.ActivityInput{
					Email: claims.Subject,
					Kind:  domain.ActivityTokenRejected,
					At:    time.Now().UTC(),
				})
			}
			return nil, fmt.Errorf("%w: account gone", domain.ErrUnauthenticated)
		}
		return nil, err
	}

	return &domain.Principal{AccountID: account.ID, Email: account.Email}, nil
}
