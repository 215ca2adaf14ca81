package memory

import "freelancedesk/internal/domain/repositories"

type gateway struct {
	store *Store
}

func (g *gateway) Freelancers() repositories.FreelancerRepository {
	return &FreelancerRepository{store: g.store}
}

func (g *gateway) Customers() repositories.CustomerRepository {
	return &CustomerRepository{store: g.store}
}

func (g *gateway) Projects() repositories.ProjectRepository {
	return &ProjectRepository{store: g.store}
}

func (g *gateway) Tasks() repositories.TaskRepository {
	return &TaskRepository{store: g.store}
}
