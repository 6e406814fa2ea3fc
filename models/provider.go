// models/provider.go
package models

import "time"

// ServiceProvider is a vetted business offering one or more service categories.
// Providers are read-only from this service's perspective; onboarding and
// verification are owned by a separate pipeline.
type ServiceProvider struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	BusinessName      string    `bson:"business_name" json:"business_name"`
	Description       string    `bson:"description" json:"description"`
	ServiceCategories []string  `bson:"service_categories" json:"service_categories"` // ordered; the first entry is the primary trade
	Location          string    `bson:"location" json:"location"`                     // free-text service area
	Rating            float64   `bson:"rating" json:"rating"`                         // 0–5
	ReviewsCount      int       `bson:"reviews_count" json:"reviews_count"`
	HourlyRate        float64   `bson:"hourly_rate" json:"hourly_rate"`
	Photos            []string  `bson:"photos" json:"photos"`
	Verified          bool      `bson:"verified" json:"verified"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at,omitzero"`
}

// PrimaryCategory returns the provider's first listed category.
func (p ServiceProvider) PrimaryCategory() string {
	if len(p.ServiceCategories) == 0 {
		return ""
	}
	return p.ServiceCategories[0]
}

// Review is a customer's rating of a completed booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	ClientID   string    `bson:"client_id" json:"client_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Rating     float64   `bson:"rating" json:"rating"` // 1–5
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at,omitzero"`
}
