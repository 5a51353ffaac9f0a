package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
)

func TestRegister_EmptyEmail(t *testing.T) {
	env := newTestEnv()

	err := env.auth.Register(context.Background(), model.RegisterRequest{
		Email:    "",
		Password: "password123",
		Name:     "Alice",
	})

	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	env := newTestEnv()

	err := env.auth.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "",
		Name:     "Alice",
	})

	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	env := newTestEnv()

	err := env.auth.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "",
	})

	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestRegister_DuplicateEmailKeepsExistingRecord(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "first-password",
		Name:     "Alice",
	}
	if err := env.auth.Register(ctx, req); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	original, err := env.store.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}

	err = env.auth.Register(ctx, model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "other-password",
		Name:     "Impostor",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register() expected ErrEmailTaken, got %v", err)
	}

	current, err := env.store.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if current.Name != original.Name || current.PasswordHash != original.PasswordHash {
		t.Error("duplicate Register() altered the existing record")
	}
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if err := env.auth.Register(ctx, model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	// A differently-cased email is a distinct identity in this store.
	if err := env.auth.Register(ctx, model.RegisterRequest{
		Email:    "Alice@example.com",
		Password: "password123",
		Name:     "Alice",
	}); err != nil {
		t.Errorf("Register() with different casing unexpected error: %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if err := env.auth.Register(ctx, model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
		Name:     "Alice",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, wrongPwErr := env.auth.Login(ctx, model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	_, unknownErr := env.auth.Login(ctx, model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPwErr, unknownErr) {
		t.Error("the two failures should be the same error kind")
	}
}

func TestLogin_ReturnsVerifiableToken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if err := env.auth.Register(ctx, model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "pw1",
		Name:     "Alice",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := env.auth.Login(ctx, model.LoginRequest{
		Email:    "alice@example.com",
		Password: "pw1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	if resp.Email != "alice@example.com" || resp.Name != "Alice" {
		t.Errorf("Login() = {%q, %q}, want display fields echoed back", resp.Email, resp.Name)
	}

	subject, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("token subject = %q, want %q", subject, "alice@example.com")
	}
}
