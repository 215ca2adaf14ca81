package service

import (
	"context"
	"log/slog"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// customerService implements the CustomerService interface
type customerService struct {
	repo repositories.CustomerRepository
	flow *formFlow[models.CustomerAttributes]
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repositories.CustomerRepository, guard *SubmitGuard, sessionID string, logger *slog.Logger) services.CustomerService {
	s := &customerService{repo: repo}
	s.flow = &formFlow[models.CustomerAttributes]{
		kind:          models.Customers,
		dependentType: "projects",
		sessionID:     sessionID,
		guard:         guard,
		logger:        logger,
		load:          s.load,
		validate: func(a *models.CustomerAttributes, _ bool) error {
			return validateCustomer(a)
		},
		normalize: trimCustomer,
	}
	return s
}

func (s *customerService) load(ctx context.Context, id string) (*loaded[models.CustomerAttributes], error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &loaded[models.CustomerAttributes]{record: c, attrs: c.CustomerAttributes, dependents: len(c.ProjectIDs)}, nil
}

func (s *customerService) Form(ctx context.Context, mode models.PanelMode, draft *models.CustomerAttributes) (*models.FormState, error) {
	return s.flow.form(ctx, mode, draft)
}

func (s *customerService) Create(ctx context.Context, attrs *models.CustomerAttributes) (*models.SaveResult, error) {
	return s.flow.create(ctx, attrs, s.repo.Create)
}

func (s *customerService) Update(ctx context.Context, id string, attrs *models.CustomerAttributes) (*models.SaveResult, error) {
	return s.flow.update(ctx, id, attrs, s.repo.Update)
}

func (s *customerService) Delete(ctx context.Context, id string) (*models.SaveResult, error) {
	return s.flow.remove(ctx, id, s.repo.Delete)
}
