package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

func TestIdentityResolver_Resolve(t *testing.T) {
	repo := newStubAccountRepo()
	codec := NewTokenCodec("unit-test-secret")
	resolver := NewIdentityResolver(codec, repo, nil)

	account, err := repo.Create(context.Background(), &domain.Account{Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	token, err := codec.Issue("jane@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if principal.AccountID != account.ID {
		t.Fatalf("account id = %q, want %q", principal.AccountID, account.ID)
	}
	if principal.Email != "jane@example.com" {
		t.Fatalf("email = %q", principal.Email)
	}
}

func TestIdentityResolver_EmptyToken(t *testing.T) {
	resolver := NewIdentityResolver(NewTokenCodec("unit-test-secret"), newStubAccountRepo(), nil)

	_, err := resolver.Resolve(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIdentityResolver_InvalidToken(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")
	resolver := NewIdentityResolver(codec, newStubAccountRepo(), nil)

	expired, err := codec.Issue("jane@example.com", -2*time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	foreign, err := NewTokenCodec("other-secret").Issue("jane@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, tc := range []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"expired", expired},
		{"wrong secret", foreign},
	} {
		_, err := resolver.Resolve(context.Background(), tc.token)
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", tc.name, err)
		}
	}
}

func TestIdentityResolver_VanishedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	codec := NewTokenCodec("unit-test-secret")
	resolver := NewIdentityResolver(codec, repo, nil)

	// A well-signed token whose subject was never (or is no longer) stored.
	token, err := codec.Issue("gone@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = resolver.Resolve(context.Background(), token)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIdentityResolver_RecordsRejectedToken(t *testing.T) {
	repo := newStubAccountRepo()
	codec := NewTokenCodec("unit-test-secret")
	recorder := &stubRecorder{}
	resolver := NewIdentityResolver(codec, repo, recorder)

	token, err := codec.Issue("gone@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	kinds := recorder.kinds()
	if len(kinds) != 1 || kinds[0] != domain.ActivityTokenRejected {
		t.Fatalf("recorded kinds = %v, want [token_rejected]", kinds)
	}
}

func TestIdentityResolver_StoreFault(t *testing.T) {
	repo := newStubAccountRepo()
	codec := NewTokenCodec("unit-test-secret")
	resolver := NewIdentityResolver(codec, repo, nil)

	token, err := codec.Issue("jane@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	repo.findErr = fmt.Errorf("connection reset")

	_, err = resolver.Resolve(context.Background(), token)
	if err == nil || errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("store fault must surface as a server error, got %v", err)
	}
}
