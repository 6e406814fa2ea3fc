// File: services/catalog/catalog.go
package catalog

import (
	"context"

	categoryRepo "habi/database/repository/category"
	providerRepo "habi/database/repository/provider"
	"habi/models"

	"go.uber.org/zap"
)

// defaultProviderLimit applies when a category listing names no limit.
const defaultProviderLimit = 10

// CatalogService is the read surface for reference and provider data.
// Every operation degrades to an empty collection on storage failure; the
// failure is logged, never propagated.
type CatalogService interface {
	ListCategories(ctx context.Context) []models.ServiceCategory
	ProvidersByCategory(ctx context.Context, category string, limit int) []models.ServiceProvider
	SearchProviders(ctx context.Context, term, location string) []models.ServiceProvider
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Categories categoryRepo.CategoryRepository
	Providers  providerRepo.ProviderRepository
	Logger     *zap.Logger
}

// ListCategories returns all service categories, name-ordered.
func (s *DefaultCatalogService) ListCategories(ctx context.Context) []models.ServiceCategory {
	categories, err := s.Categories.List(ctx)
	if err != nil {
		s.Logger.Error("catalog: failed to list categories", zap.Error(err))
		return []models.ServiceCategory{}
	}
	if categories == nil {
		categories = []models.ServiceCategory{}
	}
	return categories
}

// ProvidersByCategory returns up to limit verified providers for the
// category, best rated first.
func (s *DefaultCatalogService) ProvidersByCategory(ctx context.Context, category string, limit int) []models.ServiceProvider {
	if limit <= 0 {
		limit = defaultProviderLimit
	}
	providers, err := s.Providers.ListByCategory(ctx, category, limit)
	if err != nil {
		s.Logger.Error("catalog: failed to list providers",
			zap.String("category", category), zap.Error(err))
		return []models.ServiceProvider{}
	}
	if providers == nil {
		providers = []models.ServiceProvider{}
	}
	return providers
}

// SearchProviders runs a free-text provider search, optionally narrowed by
// location.
func (s *DefaultCatalogService) SearchProviders(ctx context.Context, term, location string) []models.ServiceProvider {
	providers, err := s.Providers.Search(ctx, providerRepo.SearchCriteria{Term: term, Location: location})
	if err != nil {
		s.Logger.Error("catalog: provider search failed",
			zap.String("term", term), zap.Error(err))
		return []models.ServiceProvider{}
	}
	if providers == nil {
		providers = []models.ServiceProvider{}
	}
	return providers
}
