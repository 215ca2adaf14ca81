package memory

import (
	"context"
	"fmt"

	"freelancedesk/internal/domain/models"
)

// CustomerRepository implements repositories.CustomerRepository in memory
type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if containsFold(c.CustomerName, search) {
			out = append(out, s.resolveCustomer(c))
		}
	}
	return sortAndCap(s, out,
		func(c models.Customer) string { return c.CustomerName },
		func(c models.Customer) string { return c.ID },
	), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, notFound("customer", id)
	}
	out := s.resolveCustomer(c)
	return &out, nil
}

func (r *CustomerRepository) Create(ctx context.Context, attrs *models.CustomerAttributes) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCustomerName("", attrs.CustomerName); err != nil {
		return "", err
	}
	id := s.newID()
	now := s.stamp()
	s.customers[id] = &models.Customer{
		ID:                 id,
		CustomerAttributes: *attrs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, attrs *models.CustomerAttributes) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return notFound("customer", id)
	}
	if err := s.checkCustomerName(id, attrs.CustomerName); err != nil {
		return err
	}
	c.CustomerAttributes = *attrs
	c.UpdatedAt = s.stamp()
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return notFound("customer", id)
	}
	delete(s.customers, id)
	for _, p := range s.projects {
		if p.CustomerID == id {
			p.CustomerID = ""
		}
	}
	return nil
}

func (s *Store) checkCustomerName(selfID, name string) error {
	for _, c := range s.customers {
		if c.ID != selfID && c.CustomerName == name {
			return conflict("customer", c.ID, fmt.Sprintf("customer %q already exists", name))
		}
	}
	return nil
}
