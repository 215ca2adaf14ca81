package service

import (
	"context"
	"fmt"
	"log/slog"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	repo      repositories.ProjectRepository
	customers repositories.CustomerRepository
	flow      *formFlow[models.ProjectAttributes]
}

// NewProjectService creates a new project service
func NewProjectService(gw repositories.Gateway, guard *SubmitGuard, sessionID string, logger *slog.Logger) services.ProjectService {
	s := &projectService{repo: gw.Projects(), customers: gw.Customers()}
	s.flow = &formFlow[models.ProjectAttributes]{
		kind:          models.Projects,
		dependentType: "tasks",
		sessionID:     sessionID,
		guard:         guard,
		logger:        logger,
		load:          s.load,
		validate:      validateProject,
		normalize:     trimProject,
		inherit: func(cur, draft *models.ProjectAttributes) {
			draft.CustomerID = cur.CustomerID
		},
	}
	return s
}

func (s *projectService) load(ctx context.Context, id string) (*loaded[models.ProjectAttributes], error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &loaded[models.ProjectAttributes]{record: p, attrs: p.ProjectAttributes, dependents: len(p.TaskIDs)}, nil
}

func (s *projectService) Form(ctx context.Context, mode models.PanelMode, draft *models.ProjectAttributes) (*models.FormState, error) {
	return s.flow.form(ctx, mode, draft)
}

// FormForCustomer evaluates the customer's "add project" form.
func (s *projectService) FormForCustomer(ctx context.Context, customerID string, draft *models.ProjectAttributes) (*models.FormState, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("project owner: %w", err)
	}
	return s.flow.addForm(draft, func(a *models.ProjectAttributes) { a.CustomerID = customerID }), nil
}

// CreateForCustomer binds the new project to customerID, ignoring any
// customer in attrs.
func (s *projectService) CreateForCustomer(ctx context.Context, customerID string, attrs *models.ProjectAttributes) (*models.SaveResult, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("project owner: %w", err)
	}
	attrs.CustomerID = customerID
	return s.flow.create(ctx, attrs, s.repo.Create)
}

func (s *projectService) Update(ctx context.Context, id string, attrs *models.ProjectAttributes) (*models.SaveResult, error) {
	return s.flow.update(ctx, id, attrs, s.repo.Update)
}

func (s *projectService) Delete(ctx context.Context, id string) (*models.SaveResult, error) {
	return s.flow.remove(ctx, id, s.repo.Delete)
}
