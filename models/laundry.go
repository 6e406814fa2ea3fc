// models/laundry.go
package models

// LaundryService is one sub-service on the laundry menu. Each carries a
// fixed base price; a laundry booking's estimate is the sum over the
// selected sub-services.
type LaundryService struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Description  string  `bson:"description" json:"description"`
	PricingModel string  `bson:"pricing_model" json:"pricing_model"` // e.g., "Flat-Rate (per bag)"
	BasePrice    float64 `bson:"base_price" json:"base_price"`
	Notes        string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
