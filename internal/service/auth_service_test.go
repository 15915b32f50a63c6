package service

import (
	"errors"
	"testing"

	"github.com/sekolahku/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func seedAdmin(t *testing.T, svc *AuthService, email, password string) *db.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := db.User{Email: email, Password: string(hashed)}
	if err := svc.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func TestAuthenticateSuccess(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(gdb, "test-secret")
	seeded := seedAdmin(t, svc, "admin@sekolahku.sch.id", "rahasia123")

	user, err := svc.Authenticate("admin@sekolahku.sch.id", "rahasia123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != seeded.ID {
		t.Fatalf("expected user %d, got %d", seeded.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(gdb, "test-secret")
	seedAdmin(t, svc, "admin@sekolahku.sch.id", "rahasia123")

	if _, err := svc.Authenticate("admin@sekolahku.sch.id", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(gdb, "test-secret")

	if _, err := svc.Authenticate("nobody@sekolahku.sch.id", "rahasia123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewAuthService(gdb, "test-secret")
	user := seedAdmin(t, svc, "admin@sekolahku.sch.id", "rahasia123")

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, id)
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	issuer := NewAuthService(gdb, "secret-a")
	verifier := NewAuthService(gdb, "secret-b")
	user := seedAdmin(t, issuer, "admin@sekolahku.sch.id", "rahasia123")

	token, err := issuer.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
