package graphql

import (
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// Gateway bundles the entity repositories sharing one session client.
type Gateway struct {
	freelancers repositories.FreelancerRepository
	customers   repositories.CustomerRepository
	projects    repositories.ProjectRepository
	tasks       repositories.TaskRepository
}

// NewGateway creates the repositories of one client.
func NewGateway(client *Client) *Gateway {
	return &Gateway{
		freelancers: NewFreelancerRepository(client),
		customers:   NewCustomerRepository(client),
		projects:    NewProjectRepository(client),
		tasks:       NewTaskRepository(client),
	}
}

// NewGatewayFactory returns a factory building one client per session.
// The base transport in cfg is shared, so connections are pooled.
func NewGatewayFactory(cfg *ClientConfig) repositories.GatewayFactory {
	return func(session *models.Session) repositories.Gateway {
		return NewGateway(NewClient(cfg, session))
	}
}

func (g *Gateway) Freelancers() repositories.FreelancerRepository { return g.freelancers }
func (g *Gateway) Customers() repositories.CustomerRepository     { return g.customers }
func (g *Gateway) Projects() repositories.ProjectRepository       { return g.projects }
func (g *Gateway) Tasks() repositories.TaskRepository             { return g.tasks }
