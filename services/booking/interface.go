package booking

import "photostudio/models"

// SessionUpdate is a partial update of a booking session. Nil fields are left
// untouched; fields may be filled in any order.
type SessionUpdate struct {
	Date     *string `json:"date,omitempty"` // YYYY-MM-DD
	TimeSlot *string `json:"timeSlot,omitempty"`
	CityID   *string `json:"cityId,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// SessionService drives the booking configurator: one session per booking
// attempt, created from a package selection and discarded on confirmation or
// cancellation.
type SessionService interface {
	// CreateSession begins a booking from the package selection committed on
	// the pricing view. A missing or unknown package yields a
	// MissingSelectionError; the caller must route back to pricing.
	CreateSession(userID string, selection models.PackageSelection) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	UpdateSession(sessionID string, update SessionUpdate) (*models.BookingSession, error)
	// ToggleAddOn flips membership of the add-on in the session's selection.
	// Toggling twice restores the original state.
	ToggleAddOn(sessionID, addOnID string) (*models.BookingSession, error)
	// EligibleAddOns returns the add-ons offered for the session's category,
	// re-evaluated from the catalog on every call.
	EligibleAddOns(sessionID string) ([]models.AddOn, error)
	Quote(sessionID string) (*models.Quote, error)
	// Confirm validates the session and, on success, records the booking and
	// discards the session. Failures return a ValidationError naming the
	// first violated rule and leave the session unchanged.
	Confirm(sessionID string) (*models.BookingConfirmation, error)
	CancelSession(sessionID string) error
}
