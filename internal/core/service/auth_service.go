package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/shopkart/commerce-api/internal/api/metrics"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

const minPasswordLength = 6

// ActivityRecorder accepts fire-and-forget account activity events. Recording
// never blocks or fails the auth request it describes.
type ActivityRecorder interface {
	Enqueue(event ports.ActivityInput)
}

// AuthService orchestrates signup and login: it validates input, then calls
// the hasher, account store, and token codec in sequence. Each call is a
// complete, independent transaction; the only temporal state is the token's
// validity window.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	resolver ports.IdentityResolver
	activity ActivityRecorder
	tokenTTL time.Duration

	// dummyHash keeps the timing class of a login against an unknown email
	// identical to one against a wrong password.
	dummyHash string
}

// NewAuthService builds the coordinator. A non-positive tokenTTL falls back
// to 24h. activity may be nil.
func NewAuthService(
	accounts ports.AccountRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	resolver ports.IdentityResolver,
	activity ActivityRecorder,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	dummy, _ := hasher.Hash("unused-timing-placeholder")
	return &AuthService{
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		resolver:  resolver,
		activity:  activity,
		tokenTTL:  tokenTTL,
		dummyHash: dummy,
	}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	if err := validateSignup(in); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        domain.CanonicalEmail(in.Email),
		PasswordHash: hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	token, err := s.tokens.Issue(created.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	s.record(created.Email, domain.ActivitySignup)
	return &ports.AuthResult{Token: token, Account: created}, nil
}

// Login deliberately returns the identical ErrInvalidCredentials whether the
// email is unknown or the password is wrong, so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	canonical := domain.CanonicalEmail(email)
	account, err := s.accounts.FindByEmail(ctx, canonical)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Burn a comparable amount of CPU so the miss is not
			// distinguishable from a wrong password by timing.
			s.hasher.Verify(password, s.dummyHash)
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.record(canonical, domain.ActivityLoginFailed)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.record(canonical, domain.ActivityLoginFailed)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(account.Email, domain.ActivityLogin)
	return &ports.AuthResult{Token: token, Account: account}, nil
}

// CurrentUser resolves the token and loads the full account record.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.Account, error) {
	principal, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}

// Logout always succeeds. Sessions are stateless: no server-side record of
// "logged in" exists, so there is nothing to invalidate and a valid token
// remains usable until natural expiry.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}

func (s *AuthService) record(email string, kind domain.ActivityKind) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{Email: email, Kind: kind, At: time.Now().UTC()})
}

func validateSignup(in ports.SignupInput) error {
	if in.Email == "" {
		return domain.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.NewValidationError("email", "must be a valid email")
	}
	if in.Password == "" {
		return domain.NewValidationError("password", "is required")
	}
	if len(in.Password) < minPasswordLength {
		return domain.NewValidationError("password", "must be at least 6 characters")
	}
	if in.FirstName == "" {
		return domain.NewValidationError("first_name", "is required")
	}
	if in.LastName == "" {
		return domain.NewValidationError("last_name", "is required")
	}
	return nil
}
