package service

import (
	"context"
	"fmt"
	"log/slog"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/domain/services"
)

// taskService implements the TaskService interface
type taskService struct {
	repo     repositories.TaskRepository
	projects repositories.ProjectRepository
	flow     *formFlow[models.TaskAttributes]
}

// NewTaskService creates a new task service
func NewTaskService(gw repositories.Gateway, guard *SubmitGuard, sessionID string, logger *slog.Logger) services.TaskService {
	s := &taskService{repo: gw.Tasks(), projects: gw.Projects()}
	s.flow = &formFlow[models.TaskAttributes]{
		kind:      models.Tasks,
		sessionID: sessionID,
		guard:     guard,
		logger:    logger,
		load:      s.load,
		validate:  validateTask,
		normalize: trimTask,
		inherit: func(cur, draft *models.TaskAttributes) {
			draft.ProjectID = cur.ProjectID
		},
	}
	return s
}

// load reports no dependents: a linked freelancer does not block deleting a task.
func (s *taskService) load(ctx context.Context, id string) (*loaded[models.TaskAttributes], error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &loaded[models.TaskAttributes]{record: t, attrs: t.TaskAttributes}, nil
}

func (s *taskService) Form(ctx context.Context, mode models.PanelMode, draft *models.TaskAttributes) (*models.FormState, error) {
	return s.flow.form(ctx, mode, draft)
}

// FormForProject evaluates the project's "add task" form.
func (s *taskService) FormForProject(ctx context.Context, projectID string, draft *models.TaskAttributes) (*models.FormState, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("task owner: %w", err)
	}
	return s.flow.addForm(draft, func(a *models.TaskAttributes) { a.ProjectID = projectID }), nil
}

// CreateForProject binds the new task to projectID.
func (s *taskService) CreateForProject(ctx context.Context, projectID string, attrs *models.TaskAttributes) (*models.SaveResult, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("task owner: %w", err)
	}
	attrs.ProjectID = projectID
	return s.flow.create(ctx, attrs, s.repo.Create)
}

func (s *taskService) Update(ctx context.Context, id string, attrs *models.TaskAttributes) (*models.SaveResult, error) {
	return s.flow.update(ctx, id, attrs, s.repo.Update)
}

func (s *taskService) Delete(ctx context.Context, id string) (*models.SaveResult, error) {
	return s.flow.remove(ctx, id, s.repo.Delete)
}
