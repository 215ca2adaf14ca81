package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of an API-issued JWT. The API puts the
// numeric user id in "id"; standard claims carry expiry.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID any `json:"id,omitempty"`
}

// User is the API account the session acts as.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session binds a browser cookie to an API bearer token. The token is never
// serialized back to clients.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
