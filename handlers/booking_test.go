package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogRepo "photostudio/database/repository/catalog"
	recordsRepo "photostudio/database/repository/records"
	"photostudio/services/availability"
	"photostudio/services/booking"
	"photostudio/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingHandler() *BookingHandler {
	catalog := catalogRepo.NewStaticCatalogRepo()
	svc := &booking.DefaultBookingSessionService{
		Catalog:      catalog,
		Quotes:       &pricing.DefaultQuoteService{Catalog: catalog},
		Availability: &availability.DefaultAvailabilityService{Catalog: catalog},
		Records:      recordsRepo.NewMemoryRecordRepo(),
		Store:        booking.NewMemorySessionStore(time.Minute),
	}
	return NewBookingHandler(svc, catalog, zap.NewNop())
}

func postJSON(t *testing.T, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/booking/session", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userID", "user-1")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestInitiateSessionWithoutSelectionRedirects(t *testing.T) {
	h := newBookingHandler()

	c, w := postJSON(t, gin.H{})
	h.InitiateSession(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, PricingRedirect, body["redirect"])
}

func TestInitiateSessionUnknownPackageRedirects(t *testing.T) {
	h := newBookingHandler()

	c, w := postJSON(t, gin.H{"selectedPackage": "no-such-package"})
	h.InitiateSession(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, PricingRedirect, body["redirect"])
}

func TestInitiateSessionReturnsSessionAndAddOns(t *testing.T) {
	h := newBookingHandler()

	c, w := postJSON(t, gin.H{"selectedPackage": "wedding-premium"})
	h.InitiateSession(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	session, ok := body["session"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, session["sessionId"])
	assert.Equal(t, "user-1", session["userId"])

	addOns, ok := body["addOns"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, addOns)
}

func TestConfirmBookingReportsFirstViolatedRule(t *testing.T) {
	h := newBookingHandler()

	c, w := postJSON(t, gin.H{"selectedPackage": "wedding-premium"})
	h.InitiateSession(c)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := decodeBody(t, w)["session"].(map[string]any)["sessionId"].(string)

	gin.SetMode(gin.TestMode)
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodPost, "/api/booking/session/"+sessionID+"/confirm", nil)
	c2.Params = gin.Params{{Key: "sessionID", Value: sessionID}}
	h.ConfirmBooking(c2)

	assert.Equal(t, http.StatusUnprocessableEntity, w2.Code)
	body := decodeBody(t, w2)
	assert.Equal(t, "datetime", body["rule"])
	assert.Equal(t, "Please select a date and time", body["error"])
}

func TestConfirmBookingUnknownSession(t *testing.T) {
	h := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/booking/session/missing/confirm", nil)
	c.Params = gin.Params{{Key: "sessionID", Value: "missing"}}
	h.ConfirmBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTimeSlots(t *testing.T) {
	h := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/booking/timeslots", nil)
	h.GetTimeSlots(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	slots, ok := body["timeSlots"].([]any)
	require.True(t, ok)
	assert.Len(t, slots, 12)
}
