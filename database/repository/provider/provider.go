package providerRepo

import (
	"context"

	"habi/models"
)

// SearchCriteria narrows a provider search. Term matches business name,
// description, or category membership; Location filters by service area
// substring. Both are case-insensitive partial matches.
type SearchCriteria struct {
	Term     string
	Location string
}

// ProviderRepository defines read access to the provider directory.
type ProviderRepository interface {
	// GetByID returns the provider with the given ID, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.ServiceProvider, error)
	// ListByCategory returns up to limit verified providers offering the
	// named category, best rated first.
	ListByCategory(ctx context.Context, category string, limit int) ([]models.ServiceProvider, error)
	// Search returns verified providers matching the criteria, best rated
	// first, capped at 20.
	Search(ctx context.Context, criteria SearchCriteria) ([]models.ServiceProvider, error)
}
