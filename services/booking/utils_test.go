package booking

import (
	"testing"

	"habi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12:00 AM", "00:00:00"},
		{"12:30 AM", "00:30:00"},
		{"1:00 AM", "01:00:00"},
		{"9:00 AM", "09:00:00"},
		{"11:59 AM", "11:59:00"},
		{"12:00 PM", "12:00:00"},
		{"12:45 PM", "12:45:00"},
		{"1:00 PM", "13:00:00"},
		{"2:00 PM", "14:00:00"},
		{"3:15 PM", "15:15:00"},
		{"11:59 PM", "23:59:00"},
		{"  2:00 pm  ", "14:00:00"},
	}
	for _, tc := range cases {
		got, err := ConvertTo24Hour(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestConvertTo24HourRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"2:00",
		"2:00 XM",
		"14:00 PM",
		"0:30 AM",
		"2:60 PM",
		"2 PM",
		"two PM",
		"2:aa PM",
	}
	for _, in := range bad {
		_, err := ConvertTo24Hour(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestValidateGeneralInputOrder(t *testing.T) {
	full := models.GeneralBookingInput{
		ScheduledDate: "2025-02-10",
		ScheduledTime: "2:00 PM",
		Location:      "123 Test St",
		Description:   "fix sink",
	}

	cases := []struct {
		name    string
		mutate  func(*models.GeneralBookingInput)
		field   string
		message string
	}{
		{"missing date", func(in *models.GeneralBookingInput) { in.ScheduledDate = "" }, "scheduled_date", "Please select a service date"},
		{"missing time", func(in *models.GeneralBookingInput) { in.ScheduledTime = "" }, "scheduled_time", "Please select a preferred time"},
		{"blank location", func(in *models.GeneralBookingInput) { in.Location = "   " }, "location", "Please enter the service location"},
		{"blank description", func(in *models.GeneralBookingInput) { in.Description = "   " }, "description", "Please describe the service needed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := full
			tc.mutate(&in)
			err := validateGeneralInput(in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.message, vErr.Message)
		})
	}

	assert.NoError(t, validateGeneralInput(full))
}

func TestValidateGeneralInputFirstFailureWins(t *testing.T) {
	// Everything is missing; the date error must be the one reported.
	err := validateGeneralInput(models.GeneralBookingInput{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "scheduled_date", vErr.Field)
}

func TestValidateLaundryInputOrder(t *testing.T) {
	full := models.LaundryBookingInput{
		ServiceIDs:    []string{"wash-fold"},
		PickupDate:    "2025-02-10",
		PickupTime:    "9:00 AM",
		PickupAddress: "456 Pickup Rd",
	}

	err := validateLaundryInput(full, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "service_ids", vErr.Field)
	assert.Equal(t, "Please select at least one service", vErr.Message)

	noDate := full
	noDate.PickupDate = ""
	err = validateLaundryInput(noDate, full.ServiceIDs)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pickup_date", vErr.Field)
	assert.Equal(t, "Please select a pickup date", vErr.Message)

	noTime := full
	noTime.PickupTime = ""
	err = validateLaundryInput(noTime, full.ServiceIDs)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pickup_time", vErr.Field)
	assert.Equal(t, "Please select a pickup time", vErr.Message)

	noAddress := full
	noAddress.PickupAddress = "  "
	err = validateLaundryInput(noAddress, full.ServiceIDs)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pickup_address", vErr.Field)
	assert.Equal(t, "Please enter your pickup address", vErr.Message)

	assert.NoError(t, validateLaundryInput(full, full.ServiceIDs))
}

func TestApplyGeneralDefaults(t *testing.T) {
	in := models.GeneralBookingInput{}
	applyGeneralDefaults(&in)
	assert.Equal(t, UrgencyNormal, in.UrgencyLevel)
	assert.Equal(t, "1-2 hours", in.EstimatedDuration)
	assert.Equal(t, "phone", in.ContactPreference)

	set := models.GeneralBookingInput{
		UrgencyLevel:      UrgencyUrgent,
		EstimatedDuration: "4-6 hours",
		ContactPreference: "message",
	}
	applyGeneralDefaults(&set)
	assert.Equal(t, UrgencyUrgent, set.UrgencyLevel)
	assert.Equal(t, "4-6 hours", set.EstimatedDuration)
	assert.Equal(t, "message", set.ContactPreference)
}

func TestBuildGeneralNotes(t *testing.T) {
	normal := buildGeneralNotes(UrgencyNormal, "1-2 hours", "phone")
	assert.Equal(t, "Urgency Level: normal\nEstimated Duration: 1-2 hours\nContact Preference: phone", normal)
	assert.NotContains(t, normal, "Surcharge")

	urgent := buildGeneralNotes(UrgencyUrgent, "2-4 hours", "message")
	assert.Contains(t, urgent, "Urgency Level: urgent")
	assert.Contains(t, urgent, "Urgency Surcharge: ₱50")

	flexible := buildGeneralNotes(UrgencyFlexible, "1-2 hours", "phone")
	assert.Contains(t, flexible, "Urgency Surcharge: ₱-25")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "250", formatAmount(250))
	assert.Equal(t, "250.5", formatAmount(250.5))
	assert.Equal(t, "-25", formatAmount(-25))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcd1234", shortID("abcd1234-efgh-5678"))
	assert.Equal(t, "short", shortID("short"))
}
