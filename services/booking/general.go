package booking

import (
	"context"
	"fmt"
	"time"

	"habi/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitGeneral validates a general service request, prices it, and writes a
// pending booking. Validation failures never touch the store.
func (s *DefaultBookingService) SubmitGeneral(ctx context.Context, clientID string, in models.GeneralBookingInput) (*models.BookingConfirmation, error) {
	applyGeneralDefaults(&in)
	if err := validateGeneralInput(in); err != nil {
		return nil, err
	}

	profile, err := s.resolveClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	provider, err := s.Providers.GetByID(ctx, in.ProviderID)
	if err != nil {
		s.Logger.Error("SubmitGeneral: provider lookup failed",
			zap.String("providerID", in.ProviderID), zap.Error(err))
		return nil, &BookingError{Code: "providerLookup", Message: "Failed to create booking. Please try again."}
	}
	if provider == nil {
		return nil, &BookingError{Code: "providerNotFound", Message: "Provider not found"}
	}

	scheduledTime, err := ConvertTo24Hour(in.ScheduledTime)
	if err != nil {
		return nil, newValidationError("scheduled_time", "Please select a valid preferred time")
	}

	cost := CalculateGeneralEstimate(provider.HourlyRate, in.UrgencyLevel)

	now := time.Now().UTC()
	record := &models.Booking{
		ID:                uuid.New().String(),
		ClientID:          profile.ID,
		ProviderID:        provider.ID,
		ServiceCategory:   provider.PrimaryCategory(),
		Description:       in.Description,
		Location:          in.Location,
		ScheduledDate:     in.ScheduledDate,
		ScheduledTime:     scheduledTime,
		Status:            models.BookingStatusPending,
		EstimatedCost:     &cost,
		Notes:             buildGeneralNotes(in.UrgencyLevel, in.EstimatedDuration, in.ContactPreference),
		UrgencyLevel:      in.UrgencyLevel,
		EstimatedDuration: in.EstimatedDuration,
		ContactPreference: in.ContactPreference,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		s.Logger.Error("SubmitGeneral: failed to create booking",
			zap.String("providerID", provider.ID), zap.Error(err))
		return nil, &BookingError{Code: "createFailed", Message: "Failed to create booking. Please try again."}
	}

	message := fmt.Sprintf(
		"Your service request has been sent to %s. They will contact you within 30 minutes to confirm details and provide a final quote.\n\nEstimated Cost: ₱%s\nBooking ID: %s...",
		provider.BusinessName, formatAmount(cost), shortID(record.ID),
	)
	return &models.BookingConfirmation{
		Booking:       *record,
		ProviderName:  provider.BusinessName,
		EstimatedCost: cost,
		Message:       message,
	}, nil
}
