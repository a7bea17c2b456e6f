package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "customer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejects(t *testing.T) {
	token, _ := GenerateToken(42, "customer", "test-secret", time.Hour)
	if _, err := ParseToken(token, "other-secret"); err != ErrInvalidToken {
		t.Errorf("wrong secret: expected ErrInvalidToken, got %v", err)
	}

	expired, _ := GenerateToken(42, "customer", "test-secret", -time.Minute)
	if _, err := ParseToken(expired, "test-secret"); err != ErrInvalidToken {
		t.Errorf("expired: expected ErrInvalidToken, got %v", err)
	}

	if _, err := ParseToken("not-a-token", "test-secret"); err != ErrInvalidToken {
		t.Errorf("garbage: expected ErrInvalidToken, got %v", err)
	}
}
