package repositories

import (
	"context"

	"freelancedesk/internal/domain/models"
)

// CustomerRepository defines API operations for customers
type CustomerRepository interface {
	// List returns up to the page size of customers sorted by customerName
	List(ctx context.Context, search string) ([]models.Customer, error)

	GetByID(ctx context.Context, id string) (*models.Customer, error)

	Create(ctx context.Context, attrs *models.CustomerAttributes) (string, error)

	Update(ctx context.Context, id string, attrs *models.CustomerAttributes) error

	Delete(ctx context.Context, id string) error
}
