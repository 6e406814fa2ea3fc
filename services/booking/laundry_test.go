package booking

import (
	"context"
	"errors"
	"testing"

	"habi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLaundryFixture() (*DefaultBookingService, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Repo: bookings,
		Providers: &fakeProviderRepo{providers: map[string]*models.ServiceProvider{
			"prov-laundry": {
				ID:                "prov-laundry",
				BusinessName:      "Sparkle Laundry",
				ServiceCategories: []string{"Laundry Services"},
			},
		}},
		Profiles: &fakeProfileRepo{profiles: map[string]*models.Profile{
			"user-1": {ID: "user-1"},
		}},
		Laundry: &fakeLaundryRepo{menu: []models.LaundryService{
			{ID: "wash-fold", Name: "Standard Wash & Fold", BasePrice: 250},
			{ID: "express", Name: "Express Wash", BasePrice: 300},
			{ID: "delicate", Name: "Delicate Wash", BasePrice: 50},
		}},
		Logger: zap.NewNop(),
	}
	return svc, bookings
}

func validLaundryInput() models.LaundryBookingInput {
	return models.LaundryBookingInput{
		ProviderID:    "prov-laundry",
		ServiceIDs:    []string{"wash-fold", "delicate"},
		PickupDate:    "2025-02-12",
		PickupTime:    "9:00 AM",
		PickupAddress: "456 Pickup Rd",
	}
}

func TestSubmitLaundry(t *testing.T) {
	svc, bookings := newLaundryFixture()

	conf, err := svc.SubmitLaundry(context.Background(), "user-1", validLaundryInput())
	require.NoError(t, err)
	require.Len(t, bookings.created, 1)

	record := bookings.created[0]
	assert.Equal(t, LaundryCategoryName, record.ServiceCategory)
	assert.Equal(t, models.BookingStatusPending, record.Status)
	assert.Equal(t, "09:00:00", record.ScheduledTime)
	assert.Equal(t, "456 Pickup Rd", record.Location)
	assert.Equal(t, "Laundry Service: Standard Wash & Fold, Delicate Wash", record.Description)
	require.NotNil(t, record.EstimatedCost)
	assert.Equal(t, 300.0, *record.EstimatedCost)

	assert.Equal(t, "Sparkle Laundry", conf.ProviderName)
	assert.Contains(t, conf.Message, "Your laundry service has been booked with Sparkle Laundry.")
	assert.Contains(t, conf.Message, "Estimated Cost: ₱300")
}

func TestSubmitLaundrySpecialInstructions(t *testing.T) {
	svc, bookings := newLaundryFixture()

	in := validLaundryInput()
	in.SpecialInstructions = "  Use hypoallergenic detergent  "
	_, err := svc.SubmitLaundry(context.Background(), "user-1", in)
	require.NoError(t, err)

	record := bookings.created[0]
	assert.Equal(t, "Laundry Service: Standard Wash & Fold, Delicate Wash\n\nUse hypoallergenic detergent", record.Description)
}

func TestSubmitLaundryDedupesSelection(t *testing.T) {
	svc, bookings := newLaundryFixture()

	in := validLaundryInput()
	in.ServiceIDs = []string{"wash-fold", "wash-fold", "delicate"}
	conf, err := svc.SubmitLaundry(context.Background(), "user-1", in)
	require.NoError(t, err)

	// Duplicate ids count once, in both price and description.
	assert.Equal(t, 300.0, conf.EstimatedCost)
	assert.Equal(t, "Laundry Service: Standard Wash & Fold, Delicate Wash", bookings.created[0].Description)
}

func TestSubmitLaundryValidationBlocksWrites(t *testing.T) {
	svc, bookings := newLaundryFixture()
	providers := svc.Providers.(*fakeProviderRepo)

	cases := []struct {
		mutate func(*models.LaundryBookingInput)
		field  string
	}{
		{func(in *models.LaundryBookingInput) { in.ServiceIDs = nil }, "service_ids"},
		{func(in *models.LaundryBookingInput) { in.PickupDate = "" }, "pickup_date"},
		{func(in *models.LaundryBookingInput) { in.PickupTime = "" }, "pickup_time"},
		{func(in *models.LaundryBookingInput) { in.PickupAddress = "" }, "pickup_address"},
	}
	for _, tc := range cases {
		in := validLaundryInput()
		tc.mutate(&in)
		_, err := svc.SubmitLaundry(context.Background(), "user-1", in)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tc.field, vErr.Field)
	}

	assert.Zero(t, providers.getCalls)
	assert.Empty(t, bookings.created)
}

func TestSubmitLaundryRequiresAuthentication(t *testing.T) {
	svc, bookings := newLaundryFixture()

	_, err := svc.SubmitLaundry(context.Background(), "", validLaundryInput())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, bookings.created)
}

func TestSubmitLaundryMenuFailure(t *testing.T) {
	svc, bookings := newLaundryFixture()
	svc.Laundry.(*fakeLaundryRepo).listErr = errors.New("connection reset")

	_, err := svc.SubmitLaundry(context.Background(), "user-1", validLaundryInput())

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "menuLookup", bErr.Code)
	assert.Empty(t, bookings.created)
}
