package repositories

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// ProjectQuery narrows a project listing. Zero fields are ignored.
type ProjectQuery struct {
	// Search is a case-insensitive substring of projectName
	Search     string
	CustomerID string
	// FreelancerID selects projects having at least one task linked to the freelancer
	FreelancerID string
}

// ProjectRepository defines API operations for projects
type ProjectRepository interface {
	// List returns up to the page size of projects sorted by projectName
	List(ctx context.Context, q ProjectQuery) ([]models.Project, error)

	// GetByID retrieves a project; returns domain.ErrNotFound for a null payload
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// Create creates a project and returns its new id
	Create(ctx context.Context, attrs *models.ProjectAttributes) (string, error)

	// Update replaces the project's attributes
	Update(ctx context.Context, id string, attrs *models.ProjectAttributes) error

	// Delete deletes a project
	Delete(ctx context.Context, id string) error
}
