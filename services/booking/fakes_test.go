package booking

import (
	"context"

	providerRepo "habi/database/repository/provider"
	"habi/models"
)

// fakeBookingRepo records writes and lets tests inject failures.
type fakeBookingRepo struct {
	created     []*models.Booking
	createErr   error
	statusCalls []models.BookingStatus
	statusErr   error
	summaries   []models.BookingSummary
	listErr     error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalls = append(f.statusCalls, status)
	return nil
}

func (f *fakeBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.BookingSummary, error) {
	return f.summaries, f.listErr
}

type fakeProviderRepo struct {
	providers map[string]*models.ServiceProvider
	getErr    error
	getCalls  int
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.providers[id], nil
}

func (f *fakeProviderRepo) ListByCategory(ctx context.Context, category string, limit int) ([]models.ServiceProvider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) Search(ctx context.Context, criteria providerRepo.SearchCriteria) ([]models.ServiceProvider, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	getErr   error
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profiles[id], nil
}

type fakeLaundryRepo struct {
	menu    []models.LaundryService
	listErr error
}

func (f *fakeLaundryRepo) List(ctx context.Context) ([]models.LaundryService, error) {
	return f.menu, f.listErr
}

func (f *fakeLaundryRepo) Seed(ctx context.Context, services []models.LaundryService) error {
	return nil
}
