package services

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// FreelancerService handles the freelancer profile form
type FreelancerService interface {
	// Form evaluates a draft against the record's defaults without saving
	Form(ctx context.Context, mode models.PanelMode, draft *models.FreelancerAttributes) (*models.FormState, error)
	Create(ctx context.Context, attrs *models.FreelancerAttributes) (*models.SaveResult, error)
	Update(ctx context.Context, id string, attrs *models.FreelancerAttributes) (*models.SaveResult, error)
	// Delete refuses with domain.DependentsError while tasks are linked
	Delete(ctx context.Context, id string) (*models.SaveResult, error)
}

// CustomerService handles the customer profile form
type CustomerService interface {
	Form(ctx context.Context, mode models.PanelMode, draft *models.CustomerAttributes) (*models.FormState, error)
	Create(ctx context.Context, attrs *models.CustomerAttributes) (*models.SaveResult, error)
	Update(ctx context.Context, id string, attrs *models.CustomerAttributes) (*models.SaveResult, error)
	// Delete refuses with domain.DependentsError while projects exist
	Delete(ctx context.Context, id string) (*models.SaveResult, error)
}

// ProjectService handles the project description form
type ProjectService interface {
	Form(ctx context.Context, mode models.PanelMode, draft *models.ProjectAttributes) (*models.FormState, error)
	// FormForCustomer evaluates a draft of the customer's "add project" form
	FormForCustomer(ctx context.Context, customerID string, draft *models.ProjectAttributes) (*models.FormState, error)
	// CreateForCustomer creates a project owned by the customer
	CreateForCustomer(ctx context.Context, customerID string, attrs *models.ProjectAttributes) (*models.SaveResult, error)
	Update(ctx context.Context, id string, attrs *models.ProjectAttributes) (*models.SaveResult, error)
	// Delete refuses with domain.DependentsError while tasks exist
	Delete(ctx context.Context, id string) (*models.SaveResult, error)
}

// TaskService handles the task description form
type TaskService interface {
	Form(ctx context.Context, mode models.PanelMode, draft *models.TaskAttributes) (*models.FormState, error)
	// FormForProject evaluates a draft of the project's "add task" form
	FormForProject(ctx context.Context, projectID string, draft *models.TaskAttributes) (*models.FormState, error)
	// CreateForProject creates a task owned by the project
	CreateForProject(ctx context.Context, projectID string, attrs *models.TaskAttributes) (*models.SaveResult, error)
	Update(ctx context.Context, id string, attrs *models.TaskAttributes) (*models.SaveResult, error)
	Delete(ctx context.Context, id string) (*models.SaveResult, error)
}
