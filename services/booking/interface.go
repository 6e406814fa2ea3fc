package booking

import (
	"context"

	"habi/models"
)

// BookingService is the submission and lifecycle surface for bookings.
type BookingService interface {
	// SubmitGeneral validates, prices and persists a general service
	// booking for the authenticated client.
	SubmitGeneral(ctx context.Context, clientID string, in models.GeneralBookingInput) (*models.BookingConfirmation, error)
	// SubmitLaundry validates, prices and persists a laundry booking.
	SubmitLaundry(ctx context.Context, clientID string, in models.LaundryBookingInput) (*models.BookingConfirmation, error)
	// UpdateStatus transitions a booking between lifecycle states.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	// ListForClient returns the client's bookings, newest first.
	ListForClient(ctx context.Context, clientID string) []models.BookingSummary
	// LaundryMenu returns the laundry sub-service price list.
	LaundryMenu(ctx context.Context) []models.LaundryService
}
