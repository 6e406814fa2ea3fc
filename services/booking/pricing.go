package booking

import "habi/models"

// Urgency levels a general booking may carry.
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencyNormal    = "normal"
	UrgencyFlexible  = "flexible"
)

// minimumBillableHours is the floor every general estimate is priced at.
const minimumBillableHours = 2

// urgencySurcharges is the fixed surcharge/discount per urgency tier.
var urgencySurcharges = map[string]float64{
	UrgencyEmergency: 100,
	UrgencyUrgent:    50,
	UrgencyNormal:    0,
	UrgencyFlexible:  -25,
}

// UrgencySurcharge returns the surcharge for the given urgency level.
func UrgencySurcharge(level string) (float64, bool) {
	s, ok := urgencySurcharges[level]
	return s, ok
}

// CalculateGeneralEstimate prices a general booking: the provider's hourly
// rate at the two-hour minimum plus the urgency surcharge. Unknown urgency
// levels carry no surcharge.
func CalculateGeneralEstimate(hourlyRate float64, urgency string) float64 {
	surcharge := urgencySurcharges[urgency]
	return hourlyRate*minimumBillableHours + surcharge
}

// CalculateLaundryEstimate sums the base prices of the selected sub-services.
// IDs not present on the menu contribute nothing.
func CalculateLaundryEstimate(menu []models.LaundryService, selectedIDs []string) float64 {
	byID := make(map[string]models.LaundryService, len(menu))
	for _, s := range menu {
		byID[s.ID] = s
	}
	total := 0.0
	for _, id := range selectedIDs {
		if s, ok := byID[id]; ok {
			total += s.BasePrice
		}
	}
	return total
}
