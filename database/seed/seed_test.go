package seed

import (
	"context"
	"testing"

	"habi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureCategoryRepo struct {
	seeded []models.ServiceCategory
}

func (c *captureCategoryRepo) List(ctx context.Context) ([]models.ServiceCategory, error) {
	return c.seeded, nil
}

func (c *captureCategoryRepo) GetByName(ctx context.Context, name string) (*models.ServiceCategory, error) {
	return nil, nil
}

func (c *captureCategoryRepo) Seed(ctx context.Context, categories []models.ServiceCategory) error {
	c.seeded = categories
	return nil
}

type captureLaundryRepo struct {
	seeded []models.LaundryService
}

func (c *captureLaundryRepo) List(ctx context.Context) ([]models.LaundryService, error) {
	return c.seeded, nil
}

func (c *captureLaundryRepo) Seed(ctx context.Context, services []models.LaundryService) error {
	c.seeded = services
	return nil
}

func TestSeedReferenceData(t *testing.T) {
	categories := &captureCategoryRepo{}
	laundry := &captureLaundryRepo{}

	require.NoError(t, SeedReferenceData(context.Background(), categories, laundry))

	require.Len(t, categories.seeded, 9)
	for _, c := range categories.seeded {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon, "category %q has no icon", c.Name)
		assert.False(t, c.CreatedAt.IsZero())
	}
	assert.Equal(t, "droplets", categories.seeded[1].Icon)
	assert.Equal(t, "Laundry Services", categories.seeded[8].Name)

	require.Len(t, laundry.seeded, 7)
	total := 0.0
	for _, s := range laundry.seeded {
		assert.NotEmpty(t, s.Name)
		assert.Greater(t, s.BasePrice, 0.0)
		total += s.BasePrice
	}
	assert.Equal(t, 1680.0, total)
}
