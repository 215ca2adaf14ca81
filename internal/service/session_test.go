package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"freelancedesk/internal/auth"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/repository/memory"
)

func newSessionService(t *testing.T) (*sessionService, *time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewSessionService(
		memory.NewAuthenticator(map[string]string{"admin": "secret"}),
		memory.NewSessionRepository(),
		auth.NewClaimsReader(testLogger()),
		memory.NewTransactionManager(),
		time.Hour,
		testLogger(),
	).(*sessionService)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestLoginAndExpiry(t *testing.T) {
	svc, now := newSessionService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &services.LoginRequest{Identifier: "admin", Password: "secret", Next: "/customers/3"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Redirect != "/customers/3" {
		t.Errorf("Redirect = %q", res.Redirect)
	}
	if !res.Session.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v", res.Session.ExpiresAt)
	}

	if _, err := svc.Get(ctx, res.Session.ID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	*now = now.Add(2 * time.Hour)
	if _, err := svc.Get(ctx, res.Session.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Get() after expiry error = %v, want ErrUnauthorized", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, &services.LoginRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty Login() error = %v, want ErrValidation", err)
	}
	if _, err := svc.Login(ctx, &services.LoginRequest{Identifier: "admin", Password: "wrong"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("bad Login() error = %v, want ErrUnauthorized", err)
	}
}

func TestLoginWithTokenCapsExpiry(t *testing.T) {
	svc, now := newSessionService(t)
	ctx := context.Background()

	// the claims reader checks exp against the wall clock
	*now = time.Now().UTC()
	exp := now.Add(10 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		UserID:           7,
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.LoginWithToken(ctx, &services.TokenLoginRequest{Token: "Bearer " + token})
	if err != nil {
		t.Fatalf("LoginWithToken() error = %v", err)
	}
	if res.Session.User.ID != "7" {
		t.Errorf("User.ID = %q, want 7", res.Session.User.ID)
	}
	if !res.Session.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want token exp %v", res.Session.ExpiresAt, exp)
	}
	if res.Redirect != "/" {
		t.Errorf("Redirect = %q, want /", res.Redirect)
	}
}

func TestLogout(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &services.LoginRequest{Identifier: "admin", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout(ctx, res.Session.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, res.Session.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Get() after logout error = %v", err)
	}
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "", want: "/"},
		{next: "/freelancers/42", want: "/freelancers/42"},
		{next: "/freelancers?search=de", want: "/freelancers?search=de"},
		{next: "https://evil.example.com/", want: "/"},
		{next: "//evil.example.com", want: "/"},
		{next: "/\\evil.example.com", want: "/"},
		{next: "freelancers", want: "/"},
		{next: "/login", want: "/"},
		{next: "/login/token", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			if got := SafeRedirect(tt.next); got != tt.want {
				t.Errorf("SafeRedirect(%q) = %q, want %q", tt.next, got, tt.want)
			}
		})
	}
}
