package service

import (
	"context"
	"testing"

	"ecoconnect/models"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	s := &AuthService{UserRepo: newFakeUserRepo()}

	user, err := s.Register(context.Background(), "carol", "carol@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected user id assigned")
	}
	if user.Role != models.RoleUser {
		t.Errorf("role = %s, want user", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")) != nil {
		t.Error("stored password is not a valid bcrypt hash of the input")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	existing := &models.Users{ID: 1, Username: "carol", Email: "other@example.com"}
	s := &AuthService{UserRepo: newFakeUserRepo(existing)}

	if _, err := s.Register(context.Background(), "carol", "carol@example.com", "secret123"); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	existing := &models.Users{ID: 1, Username: "other", Email: "carol@example.com"}
	s := &AuthService{UserRepo: newFakeUserRepo(existing)}

	if _, err := s.Register(context.Background(), "carol", "carol@example.com", "secret123"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
