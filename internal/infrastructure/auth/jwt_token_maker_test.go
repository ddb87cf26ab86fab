package auth

import (
	"errors"
	"testing"
	"time"
)

func TestNewJWTTokenMaker(t *testing.T) {
	if _, err := NewJWTTokenMaker(""); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
	if _, err := NewJWTTokenMaker("secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTTokenMaker_RoundTrip(t *testing.T) {
	maker, err := NewJWTTokenMaker("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := maker.CreateToken("ws-1", "staff", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected signed token")
	}

	subject, scope, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "ws-1" || scope != "staff" {
		t.Fatalf("unexpected claims subject=%q scope=%q", subject, scope)
	}
}

func TestJWTTokenMaker_Expired(t *testing.T) {
	maker, _ := NewJWTTokenMaker("test-secret")

	token, err := maker.CreateToken("ws-1", "staff", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := maker.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTTokenMaker_WrongSecret(t *testing.T) {
	maker, _ := NewJWTTokenMaker("test-secret")
	other, _ := NewJWTTokenMaker("another-secret")

	token, err := maker.CreateToken("ws-1", "staff", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := other.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTTokenMaker_Garbage(t *testing.T) {
	maker, _ := NewJWTTokenMaker("test-secret")
	if _, _, err := maker.VerifyToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
