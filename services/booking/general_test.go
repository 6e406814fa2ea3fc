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

func newGeneralFixture() (*DefaultBookingService, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Repo: bookings,
		Providers: &fakeProviderRepo{providers: map[string]*models.ServiceProvider{
			"prov-1": {
				ID:                "prov-1",
				BusinessName:      "FixIt Plumbing",
				ServiceCategories: []string{"Plumbing Services", "Handyman Services"},
				HourlyRate:        100,
			},
		}},
		Profiles: &fakeProfileRepo{profiles: map[string]*models.Profile{
			"user-1": {ID: "user-1", FullName: "Test User"},
		}},
		Laundry: &fakeLaundryRepo{},
		Logger:  zap.NewNop(),
	}
	return svc, bookings
}

func validGeneralInput() models.GeneralBookingInput {
	return models.GeneralBookingInput{
		ProviderID:    "prov-1",
		ScheduledDate: "2025-02-10",
		ScheduledTime: "2:00 PM",
		Location:      "123 Test St",
		Description:   "fix sink",
		UrgencyLevel:  UrgencyUrgent,
	}
}

func TestSubmitGeneral(t *testing.T) {
	svc, bookings := newGeneralFixture()

	conf, err := svc.SubmitGeneral(context.Background(), "user-1", validGeneralInput())
	require.NoError(t, err)
	require.Len(t, bookings.created, 1)

	record := bookings.created[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "user-1", record.ClientID)
	assert.Equal(t, "prov-1", record.ProviderID)
	assert.Equal(t, "Plumbing Services", record.ServiceCategory)
	assert.Equal(t, models.BookingStatusPending, record.Status)
	assert.Equal(t, "14:00:00", record.ScheduledTime)
	assert.Equal(t, "2025-02-10", record.ScheduledDate)
	require.NotNil(t, record.EstimatedCost)
	assert.Equal(t, 250.0, *record.EstimatedCost)
	assert.Contains(t, record.Notes, "Urgency Level: urgent")
	assert.Contains(t, record.Notes, "Urgency Surcharge: ₱50")

	assert.Equal(t, "FixIt Plumbing", conf.ProviderName)
	assert.Equal(t, 250.0, conf.EstimatedCost)
	assert.Contains(t, conf.Message, "Your service request has been sent to FixIt Plumbing.")
	assert.Contains(t, conf.Message, "Estimated Cost: ₱250")
	assert.Contains(t, conf.Message, "Booking ID: "+record.ID[:8]+"...")
}

func TestSubmitGeneralAppliesDefaults(t *testing.T) {
	svc, bookings := newGeneralFixture()

	in := validGeneralInput()
	in.UrgencyLevel = ""
	in.EstimatedDuration = ""
	in.ContactPreference = ""

	conf, err := svc.SubmitGeneral(context.Background(), "user-1", in)
	require.NoError(t, err)

	record := bookings.created[0]
	assert.Equal(t, UrgencyNormal, record.UrgencyLevel)
	assert.Equal(t, "1-2 hours", record.EstimatedDuration)
	assert.Equal(t, "phone", record.ContactPreference)
	assert.Equal(t, 200.0, conf.EstimatedCost)
	assert.NotContains(t, record.Notes, "Surcharge")
}

func TestSubmitGeneralValidationBlocksWrites(t *testing.T) {
	svc, bookings := newGeneralFixture()
	providers := svc.Providers.(*fakeProviderRepo)

	cases := []func(*models.GeneralBookingInput){
		func(in *models.GeneralBookingInput) { in.ScheduledDate = "" },
		func(in *models.GeneralBookingInput) { in.ScheduledTime = "" },
		func(in *models.GeneralBookingInput) { in.Location = "" },
		func(in *models.GeneralBookingInput) { in.Description = "" },
	}
	for _, mutate := range cases {
		in := validGeneralInput()
		mutate(&in)
		_, err := svc.SubmitGeneral(context.Background(), "user-1", in)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	}

	// No validation failure may reach the provider lookup or the store.
	assert.Zero(t, providers.getCalls)
	assert.Empty(t, bookings.created)
}

func TestSubmitGeneralRequiresAuthentication(t *testing.T) {
	svc, bookings := newGeneralFixture()

	_, err := svc.SubmitGeneral(context.Background(), "", validGeneralInput())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Unknown subject resolves to the same condition.
	_, err = svc.SubmitGeneral(context.Background(), "ghost", validGeneralInput())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Empty(t, bookings.created)
}

func TestSubmitGeneralUnknownProvider(t *testing.T) {
	svc, _ := newGeneralFixture()

	in := validGeneralInput()
	in.ProviderID = "prov-missing"
	_, err := svc.SubmitGeneral(context.Background(), "user-1", in)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "providerNotFound", bErr.Code)
}

func TestSubmitGeneralInvalidTime(t *testing.T) {
	svc, bookings := newGeneralFixture()

	in := validGeneralInput()
	in.ScheduledTime = "25:00 PM"
	_, err := svc.SubmitGeneral(context.Background(), "user-1", in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "scheduled_time", vErr.Field)
	assert.Equal(t, "Please select a valid preferred time", vErr.Message)
	assert.Empty(t, bookings.created)
}

func TestSubmitGeneralCreateFailure(t *testing.T) {
	svc, bookings := newGeneralFixture()
	bookings.createErr = errors.New("write concern timeout")

	_, err := svc.SubmitGeneral(context.Background(), "user-1", validGeneralInput())

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "createFailed", bErr.Code)
	assert.Equal(t, "Failed to create booking. Please try again.", bErr.Message)
}
