// models/booking.go
package models

import "time"

// PackageSelection carries the package choice committed on the pricing view
// into the booking flow. If it is absent or names an unknown package, the
// booking flow may not begin; the caller is redirected back to pricing.
type PackageSelection struct {
	SelectedPackage string       `json:"selectedPackage"` // package id
	PackageName     string       `json:"packageName"`
	PackagePrice    int64        `json:"packagePrice"`
	PackageCategory CategoryID   `json:"packageCategory"`
	BillingCycle    BillingCycle `json:"billingCycle"`
}

// ContactInfo holds the customer contact fields collected during booking.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// BookingSession accumulates the user's choices between package selection and
// final confirmation. It is ephemeral: created fresh per booking, held under a
// TTL, and discarded on confirmation or cancellation.
type BookingSession struct {
	SessionID    string             `json:"sessionId"`
	UserID       string             `json:"userId"`
	Selection    PackageSelection   `json:"selection"`
	AddOns       []string           `json:"addOns,omitempty"` // add-on ids, catalog order
	Date         string             `json:"date,omitempty"`   // YYYY-MM-DD
	TimeSlot     string             `json:"timeSlot,omitempty"`
	CityID       string             `json:"cityId,omitempty"`
	Availability *AvailabilityCheck `json:"availability,omitempty"`
	Contact      ContactInfo        `json:"contact"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// HasAddOn reports whether the given add-on id is currently selected.
func (s *BookingSession) HasAddOn(id string) bool {
	for _, a := range s.AddOns {
		if a == id {
			return true
		}
	}
	return false
}

// AvailabilityCheck is the result of a city availability lookup.
type AvailabilityCheck struct {
	CityID    string `json:"cityId"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// Quote is the derived price of a session; never stored.
type Quote struct {
	PackagePrice  int64        `json:"packagePrice"`
	AddOnTotal    int64        `json:"addOnTotal"`
	Total         int64        `json:"total"`
	BillingCycle  BillingCycle `json:"billingCycle"`
	MonthlyTotal  int64        `json:"monthlyTotal,omitempty"`  // round(total*0.9/6)
	SixMonthTotal int64        `json:"sixMonthTotal,omitempty"` // monthlyTotal*6
}

// Booking is a confirmed booking record.
type Booking struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Selection PackageSelection `json:"selection"`
	AddOns    []string         `json:"addOns,omitempty"`
	Date      string           `json:"date"`
	TimeSlot  string           `json:"timeSlot"`
	CityID    string           `json:"cityId"`
	Contact   ContactInfo      `json:"contact"`
	Total     int64            `json:"total"`
	CreatedAt time.Time        `json:"createdAt"`
}

// BookingConfirmation acknowledges a successful booking. AcknowledgeAfter is
// how long a client should display the success banner before returning to the
// configurator view.
type BookingConfirmation struct {
	Booking          Booking       `json:"booking"`
	Message          string        `json:"message"`
	AcknowledgeAfter time.Duration `json:"acknowledgeAfterNs"`
}
