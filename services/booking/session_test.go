package booking

import (
	"errors"
	"testing"
	"time"

	catalogRepo "photostudio/database/repository/catalog"
	recordsRepo "photostudio/database/repository/records"
	"photostudio/models"
	"photostudio/services/availability"
	"photostudio/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultBookingSessionService, *recordsRepo.MemoryRecordRepo) {
	catalog := catalogRepo.NewStaticCatalogRepo()
	records := recordsRepo.NewMemoryRecordRepo()
	return &DefaultBookingSessionService{
		Catalog:      catalog,
		Quotes:       &pricing.DefaultQuoteService{Catalog: catalog},
		Availability: &availability.DefaultAvailabilityService{Catalog: catalog},
		Records:      records,
		Store:        NewMemorySessionStore(time.Minute),
	}, records
}

func openSession(t *testing.T, svc *DefaultBookingSessionService, packageID string) *models.BookingSession {
	t.Helper()
	session, err := svc.CreateSession("user-1", models.PackageSelection{SelectedPackage: packageID})
	require.NoError(t, err)
	return session
}

func strPtr(s string) *string { return &s }

func TestCreateSessionRequiresSelection(t *testing.T) {
	svc, _ := newTestService()

	var missing MissingSelectionError

	_, err := svc.CreateSession("user-1", models.PackageSelection{})
	require.Error(t, err)
	assert.True(t, errors.As(err, &missing))

	_, err = svc.CreateSession("user-1", models.PackageSelection{SelectedPackage: "no-such-package"})
	require.Error(t, err)
	assert.True(t, errors.As(err, &missing))
}

func TestCreateSessionNormalizesSelection(t *testing.T) {
	svc, _ := newTestService()

	// A tampered carried price never survives; the catalog is authoritative.
	session, err := svc.CreateSession("user-1", models.PackageSelection{
		SelectedPackage: "wedding-premium",
		PackageName:     "Totally Premium",
		PackagePrice:    1,
		BillingCycle:    models.BillingMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium", session.Selection.PackageName)
	assert.Equal(t, int64(89999), session.Selection.PackagePrice)
	assert.Equal(t, models.CategoryWedding, session.Selection.PackageCategory)
	// Monthly billing is only offered for categories that support it.
	assert.Equal(t, models.BillingOneTime, session.Selection.BillingCycle)
	assert.NotEmpty(t, session.SessionID)
}

func TestCreateSessionKeepsMonthlyForCommercial(t *testing.T) {
	svc, _ := newTestService()

	session, err := svc.CreateSession("user-1", models.PackageSelection{
		SelectedPackage: "commercial-premium",
		BillingCycle:    models.BillingMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BillingMonthly, session.Selection.BillingCycle)
}

func TestToggleAddOnIsIdempotentPair(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")

	session, err := svc.ToggleAddOn(session.SessionID, "drone")
	require.NoError(t, err)
	assert.True(t, session.HasAddOn("drone"))

	session, err = svc.ToggleAddOn(session.SessionID, "drone")
	require.NoError(t, err)
	assert.False(t, session.HasAddOn("drone"))
	assert.Empty(t, session.AddOns)
}

func TestToggleAddOnKeepsCatalogOrder(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")

	_, err := svc.ToggleAddOn(session.SessionID, "prints")
	require.NoError(t, err)
	session, err = svc.ToggleAddOn(session.SessionID, "drone")
	require.NoError(t, err)

	// Catalog order, not click order.
	assert.Equal(t, []string{"drone", "prints"}, session.AddOns)
}

func TestToggleAddOnRejectsIneligible(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "babyshower-basic")

	_, err := svc.ToggleAddOn(session.SessionID, "drone")
	assert.Error(t, err)
}

func TestEligibleAddOnsMatchCategory(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "product-premium")

	addOns, err := svc.EligibleAddOns(session.SessionID)
	require.NoError(t, err)
	require.NotEmpty(t, addOns)
	for _, a := range addOns {
		assert.True(t, a.EligibleFor(models.CategoryProduct), a.ID)
	}
}

func TestUpdateSessionDateWindow(t *testing.T) {
	svc, _ := newTestService()
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 15, 0, 0, 0, time.Local)
	}
	session := openSession(t, svc, "wedding-premium")

	cases := []struct {
		date string
		ok   bool
	}{
		{"2026-03-10", true},  // today
		{"2026-06-10", true},  // window end, inclusive
		{"2026-03-09", false}, // yesterday
		{"2026-06-11", false}, // past window end
		{"10-03-2026", false}, // wrong format
	}
	for _, tc := range cases {
		_, err := svc.UpdateSession(session.SessionID, SessionUpdate{Date: strPtr(tc.date)})
		if tc.ok {
			assert.NoError(t, err, tc.date)
		} else {
			assert.Error(t, err, tc.date)
		}
	}
}

func TestUpdateSessionTimeSlot(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")

	updated, err := svc.UpdateSession(session.SessionID, SessionUpdate{TimeSlot: strPtr("2:00 PM")})
	require.NoError(t, err)
	assert.Equal(t, "2:00 PM", updated.TimeSlot)

	_, err = svc.UpdateSession(session.SessionID, SessionUpdate{TimeSlot: strPtr("2:30 PM")})
	assert.Error(t, err)
}

func TestUpdateSessionCitySurfacesAvailability(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")

	updated, err := svc.UpdateSession(session.SessionID, SessionUpdate{CityID: strPtr("kolkata")})
	require.NoError(t, err)
	require.NotNil(t, updated.Availability)
	assert.False(t, updated.Availability.Available)
	assert.Equal(t, "We'll be launching in Kolkata next month. Please check back soon!", updated.Availability.Message)

	updated, err = svc.UpdateSession(session.SessionID, SessionUpdate{CityID: strPtr("mumbai")})
	require.NoError(t, err)
	require.NotNil(t, updated.Availability)
	assert.True(t, updated.Availability.Available)
}

func TestConfirmValidatesInOrder(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")
	id := session.SessionID

	expectRule := func(rule string) {
		t.Helper()
		_, err := svc.Confirm(id)
		var ve ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, rule, ve.Rule)
	}

	expectRule(RuleDateTime)

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	_, err := svc.UpdateSession(id, SessionUpdate{Date: strPtr(date), TimeSlot: strPtr("11:00 AM")})
	require.NoError(t, err)
	expectRule(RuleCity)

	_, err = svc.UpdateSession(id, SessionUpdate{CityID: strPtr("mumbai")})
	require.NoError(t, err)
	expectRule(RuleContact)

	_, err = svc.UpdateSession(id, SessionUpdate{Name: strPtr("Priya"), Email: strPtr("priya@example.com")})
	require.NoError(t, err)
	expectRule(RuleContact) // phone still missing

	_, err = svc.UpdateSession(id, SessionUpdate{Phone: strPtr("+91 98200 12345")})
	require.NoError(t, err)

	confirmation, err := svc.Confirm(id)
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.Booking.ID)
}

func TestConfirmRejectsUnavailableCity(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "wedding-premium")
	id := session.SessionID

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	_, err := svc.UpdateSession(id, SessionUpdate{
		Date:     strPtr(date),
		TimeSlot: strPtr("2:00 PM"),
		CityID:   strPtr("kolkata"),
		Name:     strPtr("Priya"),
		Email:    strPtr("priya@example.com"),
		Phone:    strPtr("+91 98200 12345"),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(id)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, RuleAvailability, ve.Rule)
	assert.Equal(t, "We'll be launching in Kolkata next month. Please check back soon!", ve.Message)

	// The session stays open for correction.
	_, err = svc.GetSession(id)
	assert.NoError(t, err)
}

func TestConfirmHappyPath(t *testing.T) {
	svc, records := newTestService()
	session := openSession(t, svc, "wedding-premium")
	id := session.SessionID

	_, err := svc.ToggleAddOn(id, "drone")
	require.NoError(t, err)

	date := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	_, err = svc.UpdateSession(id, SessionUpdate{
		Date:     strPtr(date),
		TimeSlot: strPtr("2:00 PM"),
		CityID:   strPtr("mumbai"),
		Name:     strPtr("Priya Sharma"),
		Email:    strPtr("priya@example.com"),
		Phone:    strPtr("+91 98200 12345"),
	})
	require.NoError(t, err)

	confirmation, err := svc.Confirm(id)
	require.NoError(t, err)

	assert.Equal(t, int64(99998), confirmation.Booking.Total)
	assert.Equal(t, []string{"drone"}, confirmation.Booking.AddOns)
	assert.Equal(t, "mumbai", confirmation.Booking.CityID)
	assert.Equal(t, 3*time.Second, confirmation.AcknowledgeAfter)

	// Confirmation discards the session.
	_, err = svc.GetSession(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	stored, err := records.GetByUser("user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, confirmation.Booking.ID, stored[0].ID)
}

func TestQuoteReflectsSessionState(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "commercial-professional")
	id := session.SessionID

	_, err := svc.ToggleAddOn(id, "social")
	require.NoError(t, err)

	quote, err := svc.Quote(id)
	require.NoError(t, err)
	assert.Equal(t, int64(103998), quote.Total)
}

func TestCancelSessionDiscards(t *testing.T) {
	svc, _ := newTestService()
	session := openSession(t, svc, "portrait-basic")

	require.NoError(t, svc.CancelSession(session.SessionID))
	_, err := svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
