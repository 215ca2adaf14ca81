package repositories

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// TaskQuery narrows a task listing. Zero fields are ignored.
type TaskQuery struct {
	// Search is a case-insensitive substring of taskName
	Search       string
	ProjectID    string
	FreelancerID string
	// Unassigned selects tasks without a linked freelancer
	Unassigned bool
}

// TaskRepository defines API operations for tasks
type TaskRepository interface {
	// List returns up to the page size of tasks sorted by taskName
	List(ctx context.Context, q TaskQuery) ([]models.Task, error)

	GetByID(ctx context.Context, id string) (*models.Task, error)

	Create(ctx context.Context, attrs *models.TaskAttributes) (string, error)

	Update(ctx context.Context, id string, attrs *models.TaskAttributes) error

	// SetFreelancer links the task to a freelancer, or unlinks it when freelancerID is nil
	SetFreelancer(ctx context.Context, id string, freelancerID *string) error

	Delete(ctx context.Context, id string) error
}
