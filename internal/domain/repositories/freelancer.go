package repositories

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// FreelancerRepository defines API operations for freelancers
type FreelancerRepository interface {
	// List returns up to the page size of freelancers sorted by lastName,
	// filtered by a case-insensitive substring of lastName when search is set
	List(ctx context.Context, search string) ([]models.Freelancer, error)

	// GetByID retrieves a freelancer; returns domain.ErrNotFound for a null payload
	GetByID(ctx context.Context, id string) (*models.Freelancer, error)

	// Create creates a freelancer and returns its new id
	Create(ctx context.Context, attrs *models.FreelancerAttributes) (string, error)

	// Update replaces the freelancer's profile attributes
	Update(ctx context.Context, id string, attrs *models.FreelancerAttributes) error

	// SetTasks overwrites the freelancer's linked task id array
	SetTasks(ctx context.Context, id string, taskIDs []string) error

	// Delete deletes a freelancer
	Delete(ctx context.Context, id string) error
}
