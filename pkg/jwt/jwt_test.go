package jwt

import (
	"testing"
	"time"
)

var secret = []byte("unit-test-secret")

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", "jti-42", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %s, want alice", claims.Username)
	}
	if claims.ID != "jti-42" {
		t.Errorf("jti = %s, want jti-42", claims.ID)
	}
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "alice", "refresh", "jti-1", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for mismatched token type")
	}
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "alice", "access", "jti-1", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "alice", "access", "jti-1", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
