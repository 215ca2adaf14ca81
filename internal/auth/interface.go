package auth

import "freelancedesk/internal/domain/models"

// TokenInspector reads the claims of an API bearer token before it is
// stored in a session. Implementations differ in how much they verify.
type TokenInspector interface {
	// Inspect returns the token's claims, or domain.ErrUnauthorized when the
	// token is malformed, expired, or fails signature verification.
	Inspect(token string) (*models.TokenClaims, error)

	// Close releases any resources held by the inspector (e.g. the JWKS refresh).
	Close() error
}
