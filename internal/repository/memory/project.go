package memory

import (
	"context"
	"fmt"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// ProjectRepository implements repositories.ProjectRepository in memory
type ProjectRepository struct {
	store *Store
}

func (r *ProjectRepository) List(ctx context.Context, q repositories.ProjectQuery) ([]models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if !containsFold(p.ProjectName, q.Search) {
			continue
		}
		if q.CustomerID != "" && p.CustomerID != q.CustomerID {
			continue
		}
		if q.FreelancerID != "" && !s.projectHasFreelancer(p.ID, q.FreelancerID) {
			continue
		}
		out = append(out, s.resolveProject(p))
	}
	return sortAndCap(s, out,
		func(p models.Project) string { return p.ProjectName },
		func(p models.Project) string { return p.ID },
	), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, notFound("project", id)
	}
	out := s.resolveProject(p)
	return &out, nil
}

func (r *ProjectRepository) Create(ctx context.Context, attrs *models.ProjectAttributes) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProject("", attrs); err != nil {
		return "", err
	}
	id := s.newID()
	now := s.stamp()
	s.projects[id] = &models.Project{
		ID:                id,
		ProjectAttributes: *attrs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return id, nil
}

// Update keeps the current customer when attrs carries none.
func (r *ProjectRepository) Update(ctx context.Context, id string, attrs *models.ProjectAttributes) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return notFound("project", id)
	}
	next := *attrs
	if next.CustomerID == "" {
		next.CustomerID = p.CustomerID
	}
	if err := s.checkProject(id, &next); err != nil {
		return err
	}
	p.ProjectAttributes = next
	p.UpdatedAt = s.stamp()
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return notFound("project", id)
	}
	delete(s.projects, id)
	for _, t := range s.tasks {
		if t.ProjectID == id {
			t.ProjectID = ""
		}
	}
	return nil
}

func (s *Store) projectHasFreelancer(projectID, freelancerID string) bool {
	for _, t := range s.tasks {
		if t.ProjectID == projectID && t.FreelancerID == freelancerID {
			return true
		}
	}
	return false
}

// checkProject enforces the relation target and the (projectName, projectStart) key.
func (s *Store) checkProject(selfID string, attrs *models.ProjectAttributes) error {
	if attrs.CustomerID != "" {
		if _, ok := s.customers[attrs.CustomerID]; !ok {
			return &domain.ValidationError{
				Message: "invalid relation",
				Fields:  map[string]string{"customer": fmt.Sprintf("customer %s does not exist", attrs.CustomerID)},
			}
		}
	}
	for _, p := range s.projects {
		if p.ID != selfID && p.ProjectName == attrs.ProjectName && p.ProjectStart.Equal(attrs.ProjectStart) {
			return conflict("project", p.ID, fmt.Sprintf("project %q starting %s already exists", attrs.ProjectName, attrs.ProjectStart))
		}
	}
	return nil
}
