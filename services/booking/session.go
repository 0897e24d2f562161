package booking

import (
	"context"
	"fmt"
	"time"

	catalogRepo "photostudio/database/repository/catalog"
	recordsRepo "photostudio/database/repository/records"
	"photostudio/models"
	"photostudio/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	// Bookings may be placed up to three months out, inclusive on both ends.
	bookingWindowMonths = 3
	// How long a client should display the success acknowledgment.
	successBannerDuration = 3 * time.Second
)

// AvailabilityChecker reports whether the studio serves a city.
type AvailabilityChecker interface {
	CheckAvailability(cityID string) *models.AvailabilityCheck
}

// DefaultBookingSessionService implements SessionService on top of a
// SessionStore, the static catalog, and the pricing service.
type DefaultBookingSessionService struct {
	Catalog      catalogRepo.CatalogRepository
	Quotes       pricing.QuoteService
	Availability AvailabilityChecker
	Records      recordsRepo.RecordRepository
	Store        SessionStore

	now func() time.Time
}

func (s *DefaultBookingSessionService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// CreateSession validates the package selection, normalizes it against the
// catalog, and opens a fresh session.
func (s *DefaultBookingSessionService) CreateSession(userID string, selection models.PackageSelection) (*models.BookingSession, error) {
	if selection.SelectedPackage == "" {
		return nil, MissingSelectionError{Reason: "no package selection was carried from the pricing view"}
	}
	pkg, err := s.Catalog.GetPackage(selection.SelectedPackage)
	if err != nil {
		return nil, MissingSelectionError{Reason: fmt.Sprintf("unknown package %q", selection.SelectedPackage)}
	}

	// The catalog is authoritative for name, price and category; the carried
	// selection only commits the choice.
	selection.PackageName = pkg.Name
	selection.PackagePrice = pkg.Price
	selection.PackageCategory = pkg.Category

	if selection.BillingCycle != models.BillingMonthly {
		selection.BillingCycle = models.BillingOneTime
	} else {
		category, err := s.Catalog.GetCategory(pkg.Category)
		if err != nil || !category.HasMonthlyOption {
			selection.BillingCycle = models.BillingOneTime
		}
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Selection: selection,
		CreatedAt: s.clock(),
	}
	if err := s.Store.Save(context.Background(), session); err != nil {
		return nil, err
	}

	zap.L().Info("Booking session created",
		zap.String("sessionID", session.SessionID),
		zap.String("package", pkg.ID))
	return session, nil
}

func (s *DefaultBookingSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(context.Background(), sessionID)
}

// UpdateSession applies a partial update. Each field is checked on its own;
// fields may be set in any order.
func (s *DefaultBookingSessionService) UpdateSession(sessionID string, update SessionUpdate) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Date != nil {
		if err := s.checkDateInWindow(*update.Date); err != nil {
			return nil, err
		}
		session.Date = *update.Date
	}
	if update.TimeSlot != nil {
		if !s.isKnownTimeSlot(*update.TimeSlot) {
			return nil, fmt.Errorf("unknown time slot: %s", *update.TimeSlot)
		}
		session.TimeSlot = *update.TimeSlot
	}
	if update.CityID != nil {
		session.CityID = *update.CityID
		// Availability is surfaced proactively, not only at confirmation.
		session.Availability = s.Availability.CheckAvailability(*update.CityID)
	}
	if update.Name != nil {
		session.Contact.Name = *update.Name
	}
	if update.Email != nil {
		session.Contact.Email = *update.Email
	}
	if update.Phone != nil {
		session.Contact.Phone = *update.Phone
	}
	if update.Notes != nil {
		session.Contact.Notes = *update.Notes
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleAddOn flips set membership for the add-on. The stored order always
// follows catalog order regardless of click order.
func (s *DefaultBookingSessionService) ToggleAddOn(sessionID, addOnID string) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	addOn, err := s.Catalog.GetAddOn(addOnID)
	if err != nil {
		return nil, err
	}
	if !addOn.EligibleFor(session.Selection.PackageCategory) {
		return nil, fmt.Errorf("add-on %s is not offered for %s packages",
			addOn.ID, session.Selection.PackageCategory)
	}

	selected := make(map[string]bool, len(session.AddOns)+1)
	for _, id := range session.AddOns {
		selected[id] = true
	}
	selected[addOnID] = !selected[addOnID]

	var ordered []string
	for _, a := range s.Catalog.AddOnsForCategory(session.Selection.PackageCategory) {
		if selected[a.ID] {
			ordered = append(ordered, a.ID)
		}
	}
	session.AddOns = ordered

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) EligibleAddOns(sessionID string) ([]models.AddOn, error) {
	session, err := s.Store.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.Catalog.AddOnsForCategory(session.Selection.PackageCategory), nil
}

func (s *DefaultBookingSessionService) Quote(sessionID string) (*models.Quote, error) {
	session, err := s.Store.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.Quotes.BuildQuote(session.Selection.SelectedPackage, session.AddOns, session.Selection.BillingCycle)
}

// Confirm runs the submission checks in order; the first failure wins and the
// session stays open for correction.
func (s *DefaultBookingSessionService) Confirm(sessionID string) (*models.BookingConfirmation, error) {
	ctx := context.Background()
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Structurally guaranteed by CreateSession; defensive check only.
	if session.Selection.SelectedPackage == "" {
		return nil, ValidationError{Rule: RulePackage, Message: "Package details not found"}
	}
	if _, err := s.Catalog.GetPackage(session.Selection.SelectedPackage); err != nil {
		return nil, ValidationError{Rule: RulePackage, Message: "Package details not found"}
	}
	if session.Date == "" || session.TimeSlot == "" {
		return nil, ValidationError{Rule: RuleDateTime, Message: "Please select a date and time"}
	}
	if session.CityID == "" {
		return nil, ValidationError{Rule: RuleCity, Message: "Please select your city"}
	}
	if session.Contact.Name == "" || session.Contact.Email == "" || session.Contact.Phone == "" {
		return nil, ValidationError{Rule: RuleContact, Message: "Please fill in all required fields"}
	}

	check := s.Availability.CheckAvailability(session.CityID)
	if check == nil {
		return nil, ValidationError{Rule: RuleCity, Message: "Please select your city"}
	}
	if !check.Available {
		return nil, ValidationError{Rule: RuleAvailability, Message: check.Message}
	}

	quote, err := s.Quotes.BuildQuote(session.Selection.SelectedPackage, session.AddOns, session.Selection.BillingCycle)
	if err != nil {
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}

	bookingRecord := models.Booking{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		Selection: session.Selection,
		AddOns:    session.AddOns,
		Date:      session.Date,
		TimeSlot:  session.TimeSlot,
		CityID:    session.CityID,
		Contact:   session.Contact,
		Total:     quote.Total,
		CreatedAt: s.clock(),
	}
	if err := s.Records.Insert(bookingRecord); err != nil {
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	// The session is discarded on success; nothing else persists it.
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		zap.L().Warn("Failed to discard confirmed booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	zap.L().Info("Booking confirmed",
		zap.String("bookingID", bookingRecord.ID),
		zap.String("package", session.Selection.SelectedPackage),
		zap.Int64("total", quote.Total))

	return &models.BookingConfirmation{
		Booking:          bookingRecord,
		Message:          "Your booking request has been received. We will contact you shortly to confirm the details.",
		AcknowledgeAfter: successBannerDuration,
	}, nil
}

func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	return s.Store.Delete(context.Background(), sessionID)
}

func (s *DefaultBookingSessionService) checkDateInWindow(value string) error {
	d, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	now := s.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	last := today.AddDate(0, bookingWindowMonths, 0)
	if d.Before(today) || d.After(last) {
		return fmt.Errorf("date %s is outside the booking window (%s to %s)",
			value, today.Format(dateLayout), last.Format(dateLayout))
	}
	return nil
}

func (s *DefaultBookingSessionService) isKnownTimeSlot(slot string) bool {
	for _, known := range s.Catalog.TimeSlots() {
		if known == slot {
			return true
		}
	}
	return false
}
