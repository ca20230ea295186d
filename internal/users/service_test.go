package users

import (
	"context"
	"errors"
	"testing"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

func newUser(email string) *models.User {
	return &models.User{Name: "Test User", Email: email, PasswordHash: "hash123", Salt: "salt"}
}

func TestSignUp(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, err := svc.SignUp(ctx, newUser("x@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected an identifier")
	}

	// repeat signup with the same email must conflict, whatever the other fields
	dup := newUser("x@example.com")
	dup.Name = "Another Name"
	dup.PasswordHash = "otherhash"
	if _, err := svc.SignUp(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate signup err = %v, want ErrEmailTaken", err)
	}

	// a different email still succeeds
	if _, err := svc.SignUp(ctx, newUser("y@example.com")); err != nil {
		t.Fatalf("unexpected error for novel email: %v", err)
	}
}

func TestSignIn(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, err := svc.SignUp(ctx, newUser("x@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	u, err := svc.SignIn(ctx, "x@example.com", "hash123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID.Hex() != id {
		t.Fatalf("signin id = %s, want the signup id %s", u.ID.Hex(), id)
	}

	if _, err := svc.SignIn(ctx, "unknown@example.com", "hash123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown email err = %v, want ErrNotFound", err)
	}
	if _, err := svc.SignIn(ctx, "x@example.com", "wronghash"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong hash err = %v, want ErrInvalidCredentials", err)
	}
}
