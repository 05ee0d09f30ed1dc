package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	before := time.Now().UTC()
	token, err := codec.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "user@example.com" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "user@example.com")
	}
	if claims.IssuedAt.Before(before.Add(-2 * time.Second)) {
		t.Fatalf("issued-at %v is before issuance time %v", claims.IssuedAt, before)
	}
	wantExpiry := claims.IssuedAt.Add(time.Hour)
	if claims.ExpiresAt.Sub(wantExpiry) > time.Second || wantExpiry.Sub(claims.ExpiresAt) > time.Second {
		t.Fatalf("expiry = %v, want about %v", claims.ExpiresAt, wantExpiry)
	}
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	// Expired well past the clock-skew leeway.
	token, err := codec.Issue("user@example.com", -2*time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = codec.Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_ExpiryWithinLeeway(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	// Nominally expired but inside the tolerated skew window.
	token, err := codec.Issue("user@example.com", -5*time.Second)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := codec.Verify(token); err != nil {
		t.Fatalf("token inside leeway must verify, got %v", err)
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	token, err := codec.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenCodec_TamperedPayload(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	token, err := codec.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other, err := codec.Issue("attacker@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Payload from one token with the signature from another.
	a, b := strings.Split(token, "."), strings.Split(other, ".")
	spliced := b[0] + "." + b[1] + "." + a[2]

	_, err = codec.Verify(spliced)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a")
	verifier := NewTokenCodec("secret-b")

	token, err := issuer.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("unit-test-secret")

	for _, raw := range []string{"garbage", "a.b", "....", "header.payload"} {
		_, err := codec.Verify(raw)
		if !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}
