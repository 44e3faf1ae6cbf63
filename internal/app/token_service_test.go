package app

import (
	"errors"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", "minpai")
	token, err := svc.Issue("game-backend", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	sub, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if sub != "game-backend" {
		t.Fatalf("subject = %s, want game-backend", sub)
	}
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", "minpai").Issue("svc", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := NewTokenService("secret-b", "minpai").Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", "minpai")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Issue("svc", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestTokenServiceRejectsOtherIssuer(t *testing.T) {
	token, err := NewTokenService("secret", "someone-else").Issue("svc", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := NewTokenService("secret", "minpai").Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestTokenServiceRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{Subject: "svc", Issuer: "minpai"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := NewTokenService("secret", "minpai").Verify(signed); err == nil {
		t.Fatal("expected error for unsigned token")
	}
}

func TestTokenServiceDisabled(t *testing.T) {
	svc := NewTokenService("", "minpai")
	if svc.Enabled() {
		t.Fatal("Enabled() = true without a secret")
	}
	if _, err := svc.Issue("svc", time.Hour); !errors.Is(err, ErrTokenConfig) {
		t.Fatalf("Issue() error = %v, want %v", err, ErrTokenConfig)
	}
}
