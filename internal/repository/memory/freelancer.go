package memory

import (
	"context"
	"fmt"

	"freelancedesk/internal/domain/models"
)

// FreelancerRepository implements repositories.FreelancerRepository in memory
type FreelancerRepository struct {
	store *Store
}

func (r *FreelancerRepository) List(ctx context.Context, search string) ([]models.Freelancer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Freelancer, 0, len(s.freelancers))
	for _, f := range s.freelancers {
		if containsFold(f.LastName, search) {
			out = append(out, s.resolveFreelancer(f))
		}
	}
	return sortAndCap(s, out,
		func(f models.Freelancer) string { return f.LastName },
		func(f models.Freelancer) string { return f.ID },
	), nil
}

func (r *FreelancerRepository) GetByID(ctx context.Context, id string) (*models.Freelancer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.freelancers[id]
	if !ok {
		return nil, notFound("freelancer", id)
	}
	out := s.resolveFreelancer(f)
	return &out, nil
}

func (r *FreelancerRepository) Create(ctx context.Context, attrs *models.FreelancerAttributes) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPhone("", attrs.PhoneNumber); err != nil {
		return "", err
	}
	id := s.newID()
	now := s.stamp()
	s.freelancers[id] = &models.Freelancer{
		ID:                   id,
		FreelancerAttributes: *attrs,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return id, nil
}

func (r *FreelancerRepository) Update(ctx context.Context, id string, attrs *models.FreelancerAttributes) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.freelancers[id]
	if !ok {
		return notFound("freelancer", id)
	}
	if err := s.checkPhone(id, attrs.PhoneNumber); err != nil {
		return err
	}
	f.FreelancerAttributes = *attrs
	f.UpdatedAt = s.stamp()
	return nil
}

// SetTasks replaces the relation wholesale: listed tasks move to this
// freelancer, previously linked tasks not listed are released.
func (r *FreelancerRepository) SetTasks(ctx context.Context, id string, taskIDs []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.freelancers[id]
	if !ok {
		return notFound("freelancer", id)
	}
	keep := make(map[string]bool, len(taskIDs))
	for _, taskID := range taskIDs {
		if _, ok := s.tasks[taskID]; !ok {
			return notFound("task", taskID)
		}
		keep[taskID] = true
	}
	for _, t := range s.tasks {
		switch {
		case keep[t.ID]:
			t.FreelancerID = id
		case t.FreelancerID == id:
			t.FreelancerID = ""
		}
	}
	f.UpdatedAt = s.stamp()
	return nil
}

// Delete releases the freelancer's tasks; the API nulls dangling relations.
func (r *FreelancerRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.freelancers[id]; !ok {
		return notFound("freelancer", id)
	}
	delete(s.freelancers, id)
	for _, t := range s.tasks {
		if t.FreelancerID == id {
			t.FreelancerID = ""
		}
	}
	return nil
}

func (s *Store) checkPhone(selfID, phone string) error {
	if phone == "" {
		return nil
	}
	for _, f := range s.freelancers {
		if f.ID != selfID && f.PhoneNumber == phone {
			return conflict("freelancer", f.ID, fmt.Sprintf("phoneNumber %s is already used", phone))
		}
	}
	return nil
}
