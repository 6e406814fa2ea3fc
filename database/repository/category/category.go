package categoryRepo

import (
	"context"

	"habi/models"
)

// CategoryRepository defines data access for service category reference data.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]models.ServiceCategory, error)
	// GetByName returns the category with the given display name, or nil if absent.
	GetByName(ctx context.Context, name string) (*models.ServiceCategory, error)
	// Seed inserts the given categories if the collection is empty.
	Seed(ctx context.Context, categories []models.ServiceCategory) error
}
