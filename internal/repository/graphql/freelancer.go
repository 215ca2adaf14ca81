package graphql

import (
	"context"
	"fmt"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

// freelancerAttributes is the wire shape of a freelancer's attributes.
type freelancerAttributes struct {
	models.FreelancerAttributes
	CreatedAt *time.Time   `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt"`
	Tasks     relationMany `json:"tasks"`
}

func (a *freelancerAttributes) toModel(id string) models.Freelancer {
	return models.Freelancer{
		ID:                   id,
		FreelancerAttributes: a.FreelancerAttributes,
		TaskIDs:              a.Tasks.ids(),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// FreelancerRepository implements repositories.FreelancerRepository over GraphQL
type FreelancerRepository struct {
	client *Client
}

// NewFreelancerRepository creates a new freelancer repository
func NewFreelancerRepository(client *Client) repositories.FreelancerRepository {
	return &FreelancerRepository{client: client}
}

// List returns freelancers sorted by lastName
func (r *FreelancerRepository) List(ctx context.Context, search string) ([]models.Freelancer, error) {
	var out struct {
		Freelancers collection[freelancerAttributes] `json:"freelancers"`
	}
	vars := r.client.listVars(models.Freelancers.SortField(), containsi(models.Freelancers.SearchField(), search))
	if err := r.client.exec(ctx, "freelancers", freelancerListQuery, vars, &out); err != nil {
		return nil, err
	}

	freelancers := make([]models.Freelancer, 0, len(out.Freelancers.Data))
	for _, e := range out.Freelancers.Data {
		freelancers = append(freelancers, e.Attributes.toModel(e.ID))
	}
	return freelancers, nil
}

// GetByID retrieves a freelancer by ID
func (r *FreelancerRepository) GetByID(ctx context.Context, id string) (*models.Freelancer, error) {
	var out struct {
		Freelancer single[freelancerAttributes] `json:"freelancer"`
	}
	if err := r.client.exec(ctx, "freelancer", freelancerQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Freelancer.Data == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("freelancer %s not found", id)}
	}

	freelancer := out.Freelancer.Data.Attributes.toModel(out.Freelancer.Data.ID)
	return &freelancer, nil
}

// Create creates a freelancer
func (r *FreelancerRepository) Create(ctx context.Context, attrs *models.FreelancerAttributes) (string, error) {
	var out struct {
		CreateFreelancer mutationResult `json:"createFreelancer"`
	}
	if err := r.client.exec(ctx, "createFreelancer", createFreelancerMutation, map[string]any{"data": attrs}, &out); err != nil {
		return "", err
	}
	return createdID("createFreelancer", out.CreateFreelancer)
}

// Update updates a freelancer's profile
func (r *FreelancerRepository) Update(ctx context.Context, id string, attrs *models.FreelancerAttributes) error {
	var out struct {
		UpdateFreelancer mutationResult `json:"updateFreelancer"`
	}
	if err := r.client.exec(ctx, "updateFreelancer", updateFreelancerMutation, map[string]any{"id": id, "data": attrs}, &out); err != nil {
		return err
	}
	return mutated("freelancer", id, out.UpdateFreelancer)
}

// SetTasks overwrites the freelancer's task relation
func (r *FreelancerRepository) SetTasks(ctx context.Context, id string, taskIDs []string) error {
	if taskIDs == nil {
		// an omitted list leaves the relation untouched; an empty one clears it
		taskIDs = []string{}
	}
	var out struct {
		UpdateFreelancer mutationResult `json:"updateFreelancer"`
	}
	vars := map[string]any{"id": id, "data": map[string]any{"tasks": taskIDs}}
	if err := r.client.exec(ctx, "updateFreelancer", updateFreelancerMutation, vars, &out); err != nil {
		return err
	}
	return mutated("freelancer", id, out.UpdateFreelancer)
}

// Delete deletes a freelancer
func (r *FreelancerRepository) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteFreelancer mutationResult `json:"deleteFreelancer"`
	}
	if err := r.client.exec(ctx, "deleteFreelancer", deleteFreelancerMutation, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	return mutated("freelancer", id, out.DeleteFreelancer)
}

// createdID returns the id of a created record.
func createdID(operation string, res mutationResult) (string, error) {
	if res.Data == nil || res.Data.ID == "" {
		return "", &domain.UpstreamError{Operation: operation, Err: fmt.Errorf("response carried no id")}
	}
	return res.Data.ID, nil
}

// mutated maps a null mutation payload to not found.
func mutated(resource, id string, res mutationResult) error {
	if res.Data == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("%s %s not found", resource, id)}
	}
	return nil
}
