package booking

import (
	"context"

	bookingRepo "habi/database/repository/booking"
	laundryRepo "habi/database/repository/laundry"
	profileRepo "habi/database/repository/profile"
	providerRepo "habi/database/repository/provider"
	"habi/models"

	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Profiles  profileRepo.ProfileRepository
	Laundry   laundryRepo.LaundryRepository
	Logger    *zap.Logger
}

// resolveClient maps the authenticated subject to a profile. An empty id or
// a missing profile is the not-authenticated condition.
func (s *DefaultBookingService) resolveClient(ctx context.Context, clientID string) (*models.Profile, error) {
	if clientID == "" {
		return nil, ErrNotAuthenticated
	}
	profile, err := s.Profiles.GetByID(ctx, clientID)
	if err != nil {
		s.Logger.Error("booking: failed to resolve client profile",
			zap.String("clientID", clientID), zap.Error(err))
		return nil, &BookingError{Code: "profileLookup", Message: "Failed to create booking. Please try again."}
	}
	if profile == nil {
		return nil, ErrNotAuthenticated
	}
	return profile, nil
}

// UpdateStatus transitions a booking between lifecycle states.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if !status.Valid() {
		return newValidationError("status", "Unknown booking status")
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		s.Logger.Error("booking: failed to update status",
			zap.String("bookingID", id), zap.String("status", string(status)), zap.Error(err))
		return &BookingError{Code: "statusUpdateFailed", Message: "Failed to update booking. Please try again."}
	}
	return nil
}

// ListForClient returns the client's bookings newest first. A storage
// failure degrades to an empty list.
func (s *DefaultBookingService) ListForClient(ctx context.Context, clientID string) []models.BookingSummary {
	summaries, err := s.Repo.ListByClient(ctx, clientID)
	if err != nil {
		s.Logger.Error("booking: failed to list bookings",
			zap.String("clientID", clientID), zap.Error(err))
		return []models.BookingSummary{}
	}
	if summaries == nil {
		summaries = []models.BookingSummary{}
	}
	return summaries
}

// LaundryMenu returns the laundry price list. A storage failure degrades to
// an empty menu.
func (s *DefaultBookingService) LaundryMenu(ctx context.Context) []models.LaundryService {
	menu, err := s.Laundry.List(ctx)
	if err != nil {
		s.Logger.Error("booking: failed to load laundry menu", zap.Error(err))
		return []models.LaundryService{}
	}
	if menu == nil {
		menu = []models.LaundryService{}
	}
	return menu
}
