package graphql

import (
	"context"
	"fmt"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

type customerAttributes struct {
	models.CustomerAttributes
	CreatedAt *time.Time   `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt"`
	Projects  relationMany `json:"projects"`
}

func (a *customerAttributes) toModel(id string) models.Customer {
	return models.Customer{
		ID:                 id,
		CustomerAttributes: a.CustomerAttributes,
		ProjectIDs:         a.Projects.ids(),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// CustomerRepository implements repositories.CustomerRepository over GraphQL
type CustomerRepository struct {
	client *Client
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(client *Client) repositories.CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	var out struct {
		Customers collection[customerAttributes] `json:"customers"`
	}
	vars := r.client.listVars(models.Customers.SortField(), containsi(models.Customers.SearchField(), search))
	if err := r.client.exec(ctx, "customers", customerListQuery, vars, &out); err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(out.Customers.Data))
	for _, e := range out.Customers.Data {
		customers = append(customers, e.Attributes.toModel(e.ID))
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var out struct {
		Customer single[customerAttributes] `json:"customer"`
	}
	if err := r.client.exec(ctx, "customer", customerQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Customer.Data == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("customer %s not found", id)}
	}

	customer := out.Customer.Data.Attributes.toModel(out.Customer.Data.ID)
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, attrs *models.CustomerAttributes) (string, error) {
	var out struct {
		CreateCustomer mutationResult `json:"createCustomer"`
	}
	if err := r.client.exec(ctx, "createCustomer", createCustomerMutation, map[string]any{"data": attrs}, &out); err != nil {
		return "", err
	}
	return createdID("createCustomer", out.CreateCustomer)
}

func (r *CustomerRepository) Update(ctx context.Context, id string, attrs *models.CustomerAttributes) error {
	var out struct {
		UpdateCustomer mutationResult `json:"updateCustomer"`
	}
	if err := r.client.exec(ctx, "updateCustomer", updateCustomerMutation, map[string]any{"id": id, "data": attrs}, &out); err != nil {
		return err
	}
	return mutated("customer", id, out.UpdateCustomer)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteCustomer mutationResult `json:"deleteCustomer"`
	}
	if err := r.client.exec(ctx, "deleteCustomer", deleteCustomerMutation, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	return mutated("customer", id, out.DeleteCustomer)
}
