// models/bookinginput.go
package models

// GeneralBookingInput is the submission payload for a general service booking.
// ScheduledTime arrives as a 12-hour display string ("2:00 PM") and is
// normalized to 24-hour "HH:MM:SS" before the record is written.
type GeneralBookingInput struct {
	ProviderID        string `json:"provider_id"`
	ScheduledDate     string `json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime     string `json:"scheduled_time"` // "H:MM AM|PM"
	Location          string `json:"location"`
	Description       string `json:"description"`
	UrgencyLevel      string `json:"urgency_level"`      // emergency|urgent|normal|flexible, default normal
	EstimatedDuration string `json:"estimated_duration"` // default "1-2 hours"
	ContactPreference string `json:"contact_preference"` // phone|message, default phone
}

// LaundryBookingInput is the submission payload for the laundry flow.
type LaundryBookingInput struct {
	ProviderID          string   `json:"provider_id"`
	ServiceIDs          []string `json:"service_ids"` // selected laundry sub-services
	PickupDate          string   `json:"pickup_date"`
	PickupTime          string   `json:"pickup_time"` // "H:MM AM|PM"
	PickupAddress       string   `json:"pickup_address"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// BookingConfirmation is returned after a successful submission.
type BookingConfirmation struct {
	Booking       Booking `json:"booking"`
	ProviderName  string  `json:"provider_name"`
	EstimatedCost float64 `json:"estimated_cost"`
	Message       string  `json:"message"`
}
