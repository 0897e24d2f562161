package pricing

import "photostudio/models"

// QuoteService computes the derived price of a package plus selected add-ons.
type QuoteService interface {
	// BuildQuote prices the given package and add-on set under the requested
	// billing cycle. Add-ons must be eligible for the package's category, and
	// monthly billing is only accepted for categories that offer it.
	BuildQuote(packageID string, addOnIDs []string, cycle models.BillingCycle) (*models.Quote, error)
}
