package seed

import (
	"context"
	"time"

	categoryRepo "habi/database/repository/category"
	laundryRepo "habi/database/repository/laundry"
	"habi/models"
)

// defaultCategories is the closed set of service categories the platform
// launched with. Seeded only into an empty collection.
var defaultCategories = []models.ServiceCategory{
	{ID: "cat-it", Name: "IT & Tech Support", Description: "Computer repair, network setup, smart home installation, and tech troubleshooting"},
	{ID: "cat-plumbing", Name: "Plumbing Services", Description: "Leak repair, drain cleaning, fixture installation, and water heater services"},
	{ID: "cat-electrical", Name: "Electrical Services", Description: "Outlet installation, lighting repair, wiring, and electrical safety"},
	{ID: "cat-hvac", Name: "HVAC Services", Description: "AC repair/installation, heating system maintenance, and duct cleaning"},
	{ID: "cat-car", Name: "Car Repair & Maintenance", Description: "Engine diagnostics, brake repair, oil changes, and general automotive maintenance"},
	{ID: "cat-cleaning", Name: "House Cleaning", Description: "Regular cleaning, deep cleaning, and move-in/out cleaning services"},
	{ID: "cat-painting", Name: "Painting Services", Description: "Interior and exterior painting for residential and commercial properties"},
	{ID: "cat-handyman", Name: "General Handyman", Description: "Home repairs, furniture assembly, and general maintenance tasks"},
	{ID: "cat-laundry", Name: "Laundry Services", Description: "Wash & fold, ironing, express and delicate care with pickup and delivery"},
}

// defaultLaundryMenu mirrors the launch laundry price list.
var defaultLaundryMenu = []models.LaundryService{
	{ID: "1", Name: "Standard Wash & Fold", Description: "Wash, dry, fold for everyday clothes", PricingModel: "Flat-Rate (per bag)", BasePrice: 250.00, Notes: "Most common recurring service"},
	{ID: "2", Name: "Standard Wash & Iron", Description: "Clothes are washed, dried, and ironed", PricingModel: "Flat-Rate (per bag) or Per-Piece", BasePrice: 350.00, Notes: "Ideal for professionals and families"},
	{ID: "3", Name: "Express Wash", Description: "Same-day wash & fold service", PricingModel: "Flat-Rate + Add-on", BasePrice: 300.00, Notes: "Time-based surcharge"},
	{ID: "4", Name: "Express Wash & Iron", Description: "Same-day wash + ironing", PricingModel: "Flat-Rate + Add-on", BasePrice: 450.00, Notes: "Premium tier with speed + quality"},
	{ID: "5", Name: "Delicate Wash", Description: "Gentle handling (air-dry, cold cycle)", PricingModel: "Per-Piece", BasePrice: 50.00, Notes: "For silks, lace, wool"},
	{ID: "6", Name: "Baby Clothes", Description: "Uses hypoallergenic detergent", PricingModel: "Flat-Rate or Per-Piece", BasePrice: 200.00, Notes: "Family-safe; could be bundled"},
	{ID: "7", Name: "Curtain/Bedding Wash", Description: "Wash for oversized items", PricingModel: "Per-Kilo", BasePrice: 80.00, Notes: "Large items by weight (e.g., duvets, drapes)"},
}

// SeedReferenceData populates category and laundry reference collections on
// first boot. Existing data is left untouched.
func SeedReferenceData(ctx context.Context, categories categoryRepo.CategoryRepository, laundry laundryRepo.LaundryRepository) error {
	now := time.Now().UTC()
	cats := make([]models.ServiceCategory, len(defaultCategories))
	for i, c := range defaultCategories {
		c.Icon = models.IconForCategory(c.Name)
		c.CreatedAt = now
		cats[i] = c
	}
	if err := categories.Seed(ctx, cats); err != nil {
		return err
	}
	return laundry.Seed(ctx, defaultLaundryMenu)
}
