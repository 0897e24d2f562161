package booking

import "fmt"

// Validation rule identifiers, in the order they are enforced at confirmation.
const (
	RulePackage      = "package"
	RuleDateTime     = "datetime"
	RuleCity         = "city"
	RuleContact      = "contact"
	RuleAvailability = "availability"
)

// MissingSelectionError signals that a booking was begun without a valid
// package selection. Callers recover by redirecting to the pricing view.
type MissingSelectionError struct {
	Reason string
}

func (e MissingSelectionError) Error() string {
	return "no package selected: " + e.Reason
}

// ValidationError carries the single first violated rule at confirmation time.
// The session stays open; the user corrects and resubmits.
type ValidationError struct {
	Rule    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Message)
}

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = fmt.Errorf("booking session not found or expired")
