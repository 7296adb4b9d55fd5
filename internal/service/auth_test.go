package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"daybook/internal/domain"
	"daybook/internal/repository/sqlite"
	"daybook/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 4), db
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "new@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if user.CreatedAt.IsZero() || user.LastLogin.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestAuthService_Register_UniqueIDs(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	a, err := auth.Register(ctx, "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Register a: %v", err)
	}
	b, err := auth.Register(ctx, "b@example.com", "password123")
	if err != nil {
		t.Fatalf("Register b: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("two accounts got the same id %s", a.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	first, err := auth.Register(ctx, "dup@example.com", "password123")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err = auth.Register(ctx, "dup@example.com", "password456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The original account is untouched.
	stored, err := db.Users().GetByEmail(ctx, "dup@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.PasswordHash != first.PasswordHash {
		t.Fatal("original password hash changed on failed re-register")
	}
	if !stored.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("original created_at changed on failed re-register")
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "password123"},
		{"malformed email", "not-an-email", "password123"},
		{"short password", "ok@example.com", "short"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.Register(ctx, tc.email, tc.password); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	created, err := auth.Register(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.LastLogin.Before(created.LastLogin) {
		t.Fatalf("last_login went backwards: %v < %v", user.LastLogin, created.LastLogin)
	}

	// The login time is persisted, not just returned.
	stored, err := db.Users().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.LastLogin.Before(created.LastLogin) {
		t.Fatalf("last_login not persisted: %v", stored.LastLogin)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != created.ID {
		t.Fatalf("token sub = %s, want %s", userID, created.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	created, err := auth.Register(ctx, "wrong@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err = auth.Login(ctx, "wrong@example.com", "nope-nope-nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// A failed login must not touch last_login.
	stored, err := db.Users().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.LastLogin.Equal(created.LastLogin) {
		t.Fatalf("last_login changed on failed login: %v != %v", stored.LastLogin, created.LastLogin)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, _, err := auth.Login(context.Background(), "ghost@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	auth, _ := newTestAuthService(t)

	if _, err := auth.ValidateToken("not.a.jwt"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "secret@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := auth.Login(ctx, "secret@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := service.NewAuthService(db.Users(), "a-completely-different-secret", 4)
	if _, err := other.ValidateToken(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for wrong secret, got %v", err)
	}
}
