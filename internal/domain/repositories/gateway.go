package repositories

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// Gateway groups the entity repositories of one API connection.
type Gateway interface {
	Freelancers() FreelancerRepository
	Customers() CustomerRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
}

// GatewayFactory opens a Gateway acting with the session's bearer token.
type GatewayFactory func(session *models.Session) Gateway

// Authenticator exchanges credentials for an API token.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (token string, user *models.User, err error)
}
