package memory

import (
	"context"
	"fmt"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// TaskRepository implements repositories.TaskRepository in memory
type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) List(ctx context.Context, q repositories.TaskQuery) ([]models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		switch {
		case !containsFold(t.TaskName, q.Search):
			continue
		case q.ProjectID != "" && t.ProjectID != q.ProjectID:
			continue
		case q.FreelancerID != "" && t.FreelancerID != q.FreelancerID:
			continue
		case q.FreelancerID == "" && q.Unassigned && t.FreelancerID != "":
			continue
		}
		out = append(out, s.resolveTask(t))
	}
	return sortAndCap(s, out,
		func(t models.Task) string { return t.TaskName },
		func(t models.Task) string { return t.ID },
	), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFound("task", id)
	}
	out := s.resolveTask(t)
	return &out, nil
}

func (r *TaskRepository) Create(ctx context.Context, attrs *models.TaskAttributes) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTask("", attrs); err != nil {
		return "", err
	}
	id := s.newID()
	now := s.stamp()
	s.tasks[id] = &models.Task{
		ID:             id,
		TaskAttributes: *attrs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return id, nil
}

// Update leaves the freelancer link alone and keeps the project when attrs carries none.
func (r *TaskRepository) Update(ctx context.Context, id string, attrs *models.TaskAttributes) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return notFound("task", id)
	}
	next := *attrs
	if next.ProjectID == "" {
		next.ProjectID = t.ProjectID
	}
	if err := s.checkTask(id, &next); err != nil {
		return err
	}
	t.TaskAttributes = next
	t.UpdatedAt = s.stamp()
	return nil
}

func (r *TaskRepository) SetFreelancer(ctx context.Context, id string, freelancerID *string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return notFound("task", id)
	}
	if freelancerID == nil {
		t.FreelancerID = ""
	} else {
		if _, ok := s.freelancers[*freelancerID]; !ok {
			return &domain.ValidationError{
				Message: "invalid relation",
				Fields:  map[string]string{"freelancer": fmt.Sprintf("freelancer %s does not exist", *freelancerID)},
			}
		}
		t.FreelancerID = *freelancerID
	}
	t.UpdatedAt = s.stamp()
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return notFound("task", id)
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) checkTask(selfID string, attrs *models.TaskAttributes) error {
	if attrs.ProjectID != "" {
		if _, ok := s.projects[attrs.ProjectID]; !ok {
			return &domain.ValidationError{
				Message: "invalid relation",
				Fields:  map[string]string{"project": fmt.Sprintf("project %s does not exist", attrs.ProjectID)},
			}
		}
	}
	for _, t := range s.tasks {
		if t.ID != selfID && t.TaskName == attrs.TaskName && t.TaskStart.Equal(attrs.TaskStart) {
			return conflict("task", t.ID, fmt.Sprintf("task %q starting %s already exists", attrs.TaskName, attrs.TaskStart))
		}
	}
	return nil
}
