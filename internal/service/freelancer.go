package service

import (
	"context"
	"log/slog"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// freelancerService implements the FreelancerService interface
type freelancerService struct {
	repo repositories.FreelancerRepository
	flow *formFlow[models.FreelancerAttributes]
}

// NewFreelancerService creates a new freelancer service
func NewFreelancerService(repo repositories.FreelancerRepository, guard *SubmitGuard, sessionID string, logger *slog.Logger) services.FreelancerService {
	s := &freelancerService{repo: repo}
	s.flow = &formFlow[models.FreelancerAttributes]{
		kind:          models.Freelancers,
		dependentType: "tasks",
		sessionID:     sessionID,
		guard:         guard,
		logger:        logger,
		load:          s.load,
		validate: func(a *models.FreelancerAttributes, _ bool) error {
			return validateFreelancer(a)
		},
		normalize: trimFreelancer,
	}
	return s
}

func (s *freelancerService) load(ctx context.Context, id string) (*loaded[models.FreelancerAttributes], error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &loaded[models.FreelancerAttributes]{record: f, attrs: f.FreelancerAttributes, dependents: len(f.TaskIDs)}, nil
}

func (s *freelancerService) Form(ctx context.Context, mode models.PanelMode, draft *models.FreelancerAttributes) (*models.FormState, error) {
	return s.flow.form(ctx, mode, draft)
}

func (s *freelancerService) Create(ctx context.Context, attrs *models.FreelancerAttributes) (*models.SaveResult, error) {
	return s.flow.create(ctx, attrs, s.repo.Create)
}

func (s *freelancerService) Update(ctx context.Context, id string, attrs *models.FreelancerAttributes) (*models.SaveResult, error) {
	return s.flow.update(ctx, id, attrs, s.repo.Update)
}

func (s *freelancerService) Delete(ctx context.Context, id string) (*models.SaveResult, error) {
	return s.flow.remove(ctx, id, s.repo.Delete)
}
