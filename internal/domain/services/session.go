package services

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// LoginRequest is the credential login form
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Next       string `json:"next"`
}

// TokenLoginRequest signs in with an existing API token
type TokenLoginRequest struct {
	Token string `json:"token"`
	Next  string `json:"next"`
}

// LoginResult is a new session and where to continue
type LoginResult struct {
	Session  *models.Session `json:"session"`
	Redirect string          `json:"redirect"`
}

// SessionService manages login sessions
type SessionService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	LoginWithToken(ctx context.Context, req *TokenLoginRequest) (*LoginResult, error)

	// Get returns a live session; expired or unknown ids yield domain.ErrUnauthorized
	Get(ctx context.Context, id string) (*models.Session, error)

	Logout(ctx context.Context, id string) error
}
