package graphql

import (
	"context"
	"errors"
	"fmt"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// Authenticator logs in through the API's login mutation.
type Authenticator struct {
	client *Client
}

// NewAuthenticator creates an authenticator on an anonymous client.
func NewAuthenticator(cfg *ClientConfig) repositories.Authenticator {
	return &Authenticator{client: NewClient(cfg, nil)}
}

// Login exchanges identifier/password for a JWT.
func (a *Authenticator) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	var out struct {
		Login struct {
			JWT  string `json:"jwt"`
			User struct {
				ID       string `json:"id"`
				Username string `json:"username"`
				Email    string `json:"email"`
			} `json:"user"`
		} `json:"login"`
	}
	vars := map[string]any{
		"input": map[string]any{
			"identifier": identifier,
			"password":   password,
			"provider":   "local",
		},
	}

	if err := a.client.exec(ctx, "login", loginMutation, vars, &out); err != nil {
		// bad credentials come back as a validation error
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrForbidden) {
			return "", nil, &domain.UnauthorizedError{Message: "invalid identifier or password"}
		}
		return "", nil, err
	}
	if out.Login.JWT == "" {
		return "", nil, &domain.UpstreamError{Operation: "login", Err: fmt.Errorf("response carried no token")}
	}

	return out.Login.JWT, &models.User{
		ID:       out.Login.User.ID,
		Username: out.Login.User.Username,
		Email:    out.Login.User.Email,
	}, nil
}
