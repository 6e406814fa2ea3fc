// models/category.go
package models

import "time"

// ServiceCategory is read-only reference data describing a named grouping of services.
type ServiceCategory struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`               // e.g., "Plumbing Services"
	Description string    `bson:"description" json:"description"` // shown on catalog cards and in assistant replies
	Icon        string    `bson:"icon" json:"icon"`               // icon reference rendered by the client
	CreatedAt   time.Time `bson:"created_at" json:"created_at,omitzero"`
}

// IconForCategory resolves the icon reference for a category name.
// The set of categories is closed; anything else falls back to the wrench.
func IconForCategory(name string) string {
	switch name {
	case "IT & Tech Support":
		return "monitor"
	case "Plumbing Services":
		return "droplets"
	case "Electrical Services":
		return "zap"
	case "HVAC Services":
		return "thermometer"
	case "Car Repair & Maintenance":
		return "car"
	case "House Cleaning":
		return "sparkles"
	case "Painting Services":
		return "paintbrush"
	case "General Handyman":
		return "wrench"
	case "Laundry Services":
		return "shirt"
	default:
		return "wrench"
	}
}
