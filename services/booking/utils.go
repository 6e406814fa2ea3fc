package booking

import (
	"fmt"
	"strconv"
	"strings"

	"habi/models"
)

// durationOptions are the estimated-duration choices offered on the general
// booking form.
var durationOptions = []string{
	"30 minutes - 1 hour",
	"1-2 hours",
	"2-4 hours",
	"4-6 hours",
	"Full day (8+ hours)",
	"Multiple days",
}

const (
	defaultDuration          = "1-2 hours"
	defaultContactPreference = "phone"
)

// applyGeneralDefaults fills the optional general-form fields the client may
// omit.
func applyGeneralDefaults(in *models.GeneralBookingInput) {
	if in.UrgencyLevel == "" {
		in.UrgencyLevel = UrgencyNormal
	}
	if in.EstimatedDuration == "" {
		in.EstimatedDuration = defaultDuration
	}
	if in.ContactPreference == "" {
		in.ContactPreference = defaultContactPreference
	}
}

// validateGeneralInput checks required fields in form order; the first
// failure wins.
func validateGeneralInput(in models.GeneralBookingInput) error {
	if in.ScheduledDate == "" {
		return newValidationError("scheduled_date", "Please select a service date")
	}
	if in.ScheduledTime == "" {
		return newValidationError("scheduled_time", "Please select a preferred time")
	}
	if strings.TrimSpace(in.Location) == "" {
		return newValidationError("location", "Please enter the service location")
	}
	if strings.TrimSpace(in.Description) == "" {
		return newValidationError("description", "Please describe the service needed")
	}
	return nil
}

// validateLaundryInput checks the laundry form in order; the first failure
// wins. serviceIDs must already be deduplicated.
func validateLaundryInput(in models.LaundryBookingInput, serviceIDs []string) error {
	if len(serviceIDs) == 0 {
		return newValidationError("service_ids", "Please select at least one service")
	}
	if in.PickupDate == "" {
		return newValidationError("pickup_date", "Please select a pickup date")
	}
	if in.PickupTime == "" {
		return newValidationError("pickup_time", "Please select a pickup time")
	}
	if strings.TrimSpace(in.PickupAddress) == "" {
		return newValidationError("pickup_address", "Please enter your pickup address")
	}
	return nil
}

// ConvertTo24Hour normalizes a 12-hour display string such as "2:00 PM" to
// a 24-hour "HH:MM:SS" wall-clock string. Hour 12 maps to 00 for AM and
// stays 12 for PM; any other PM hour has 12 added.
func ConvertTo24Hour(display string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(display))
	if len(fields) != 2 {
		return "", fmt.Errorf("invalid time %q: expected \"H:MM AM|PM\"", display)
	}
	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", fmt.Errorf("invalid time %q: unknown meridiem %q", display, fields[1])
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q: expected \"H:MM AM|PM\"", display)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("invalid time %q: hour out of range", display)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q: minute out of range", display)
	}

	if meridiem == "PM" && hour != 12 {
		hour += 12
	} else if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// buildGeneralNotes assembles the free-text notes attached to a general
// booking. The surcharge line appears only for non-normal urgency.
func buildGeneralNotes(urgency, duration, contact string) string {
	lines := []string{
		"Urgency Level: " + urgency,
		"Estimated Duration: " + duration,
		"Contact Preference: " + contact,
	}
	if urgency != UrgencyNormal {
		if surcharge, ok := UrgencySurcharge(urgency); ok {
			lines = append(lines, "Urgency Surcharge: ₱"+formatAmount(surcharge))
		}
	}
	return strings.Join(lines, "\n")
}

// formatAmount renders a currency amount without trailing zeros.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// shortID truncates a booking id for display in confirmation messages.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
