package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"habi/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LaundryCategoryName is the category every laundry booking is filed under.
const LaundryCategoryName = "Laundry Services"

// SubmitLaundry validates a laundry pickup request, prices the selected
// sub-services, and writes a pending booking.
func (s *DefaultBookingService) SubmitLaundry(ctx context.Context, clientID string, in models.LaundryBookingInput) (*models.BookingConfirmation, error) {
	selection := NewSelection(in.ServiceIDs...)
	if err := validateLaundryInput(in, selection.IDs()); err != nil {
		return nil, err
	}

	profile, err := s.resolveClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	provider, err := s.Providers.GetByID(ctx, in.ProviderID)
	if err != nil {
		s.Logger.Error("SubmitLaundry: provider lookup failed",
			zap.String("providerID", in.ProviderID), zap.Error(err))
		return nil, &BookingError{Code: "providerLookup", Message: "Failed to create booking. Please try again."}
	}
	if provider == nil {
		return nil, &BookingError{Code: "providerNotFound", Message: "Provider not found"}
	}

	menu, err := s.Laundry.List(ctx)
	if err != nil {
		s.Logger.Error("SubmitLaundry: failed to load laundry menu", zap.Error(err))
		return nil, &BookingError{Code: "menuLookup", Message: "Failed to create booking. Please try again."}
	}

	pickupTime, err := ConvertTo24Hour(in.PickupTime)
	if err != nil {
		return nil, newValidationError("pickup_time", "Please select a valid pickup time")
	}

	cost := selection.Total(menu)
	description := laundryDescription(menu, selection.IDs(), in.SpecialInstructions)

	now := time.Now().UTC()
	record := &models.Booking{
		ID:              uuid.New().String(),
		ClientID:        profile.ID,
		ProviderID:      provider.ID,
		ServiceCategory: LaundryCategoryName,
		Description:     description,
		Location:        in.PickupAddress,
		ScheduledDate:   in.PickupDate,
		ScheduledTime:   pickupTime,
		Status:          models.BookingStatusPending,
		EstimatedCost:   &cost,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		s.Logger.Error("SubmitLaundry: failed to create booking",
			zap.String("providerID", provider.ID), zap.Error(err))
		return nil, &BookingError{Code: "createFailed", Message: "Failed to create booking. Please try again."}
	}

	message := fmt.Sprintf(
		"Your laundry service has been booked with %s. They will contact you shortly to confirm pickup details.\n\nEstimated Cost: ₱%s\nBooking ID: %s...",
		provider.BusinessName, formatAmount(cost), shortID(record.ID),
	)
	return &models.BookingConfirmation{
		Booking:       *record,
		ProviderName:  provider.BusinessName,
		EstimatedCost: cost,
		Message:       message,
	}, nil
}

// laundryDescription joins the selected sub-service names, with special
// instructions appended as a second paragraph when present.
func laundryDescription(menu []models.LaundryService, selectedIDs []string, instructions string) string {
	byID := make(map[string]models.LaundryService, len(menu))
	for _, s := range menu {
		byID[s.ID] = s
	}
	var names []string
	for _, id := range selectedIDs {
		if s, ok := byID[id]; ok {
			names = append(names, s.Name)
		}
	}
	description := "Laundry Service: " + strings.Join(names, ", ")
	if trimmed := strings.TrimSpace(instructions); trimmed != "" {
		description += "\n\n" + trimmed
	}
	return description
}
