package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"finance-assistant-go-be/config"
)

func testService(expiresIn time.Duration) *TokenService {
	return NewTokenService(config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: expiresIn,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID)
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if got != userID {
		t.Errorf("parsed id = %s, want %s", got, userID)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := testService(time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Parse(token); err == nil {
			t.Errorf("token %q: expected error", token)
		}
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := testService(time.Hour)
	verifier := NewTokenService(config.Config{JWTSecret: "other-secret", JWTExpiresIn: time.Hour})

	token, err := issuer.Generate(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Error("expected signature verification to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	token, err := svc.Generate(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Parse(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
