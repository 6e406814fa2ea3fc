// models/booking.go
package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a client's request for a provider's service at a specific
// date/time/location. Client-initiated bookings always start pending.
type Booking struct {
	ID                string        `bson:"id" json:"id"`
	ClientID          string        `bson:"client_id" json:"client_id"`
	ProviderID        string        `bson:"provider_id" json:"provider_id"`
	ServiceCategory   string        `bson:"service_category" json:"service_category"`
	Description       string        `bson:"description" json:"description"`
	Location          string        `bson:"location" json:"location"`
	ScheduledDate     string        `bson:"scheduled_date" json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime     string        `bson:"scheduled_time" json:"scheduled_time"` // 24-hour "HH:MM:SS"
	Status            BookingStatus `bson:"status" json:"status"`
	EstimatedCost     *float64      `bson:"estimated_cost,omitempty" json:"estimated_cost,omitempty"`
	FinalCost         *float64      `bson:"final_cost,omitempty" json:"final_cost,omitempty"`
	Notes             string        `bson:"notes,omitempty" json:"notes,omitempty"`
	UrgencyLevel      string        `bson:"urgency_level,omitempty" json:"urgency_level,omitempty"`
	EstimatedDuration string        `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"`
	ContactPreference string        `bson:"contact_preference,omitempty" json:"contact_preference,omitempty"`
	Photos            []string      `bson:"photos,omitempty" json:"photos,omitempty"`
	Videos            []string      `bson:"videos,omitempty" json:"videos,omitempty"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingProviderInfo carries the minimal provider fields joined onto a
// booking listing row.
type BookingProviderInfo struct {
	BusinessName string  `bson:"business_name" json:"business_name"`
	Rating       float64 `bson:"rating" json:"rating"`
	Location     string  `bson:"location" json:"location"`
}

// BookingSummary is a booking joined with provider display fields for the
// bookings list, newest first.
type BookingSummary struct {
	Booking  `bson:",inline"`
	Provider BookingProviderInfo `bson:"provider" json:"provider"`
}
