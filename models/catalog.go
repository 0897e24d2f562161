// models/catalog.go
package models

// CategoryID is an enumerated tag partitioning the service catalog.
type CategoryID string

const (
	CategoryWedding    CategoryID = "wedding"
	CategoryBabyShower CategoryID = "babyShower"
	CategoryProduct    CategoryID = "product"
	CategoryPortrait   CategoryID = "portrait"
	CategoryEvent      CategoryID = "event"
	CategoryCommercial CategoryID = "commercial"
)

// BillingCycle selects between a one-time payment and discounted monthly
// installments over a fixed 6-month contract.
type BillingCycle string

const (
	BillingOneTime BillingCycle = "onetime"
	BillingMonthly BillingCycle = "monthly"
)

// Category groups packages and add-ons under one service classification.
type Category struct {
	ID               CategoryID `json:"id"`
	Label            string     `json:"label"`
	Icon             string     `json:"icon"`
	HasMonthlyOption bool       `json:"hasMonthlyOption,omitempty"`
}

// Package is a fixed-price bundle of deliverables within one category.
// Immutable reference data; never mutated at runtime.
type Package struct {
	ID           string     `json:"id"`
	Category     CategoryID `json:"category"`
	Name         string     `json:"name"`
	Price        int64      `json:"price"` // whole currency units (INR)
	Description  string     `json:"description"`
	Features     []string   `json:"features"`
	Popular      bool       `json:"popular,omitempty"`
	Discount     string     `json:"discount,omitempty"`
	Duration     string     `json:"duration"`
	EditedPhotos int        `json:"editedPhotos"`
	DeliveryTime string     `json:"deliveryTime"`
}

// AddOn is an optional priced extra, eligible only within specific categories.
type AddOn struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Price      int64        `json:"price"`
	Categories []CategoryID `json:"categories"`
}

// EligibleFor reports whether the add-on may be offered for the given category.
func (a AddOn) EligibleFor(category CategoryID) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// City is a serviceable location. Unavailable cities carry an alternative
// message shown instead of the generic one.
type City struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Available          bool   `json:"available"`
	AlternativeMessage string `json:"alternativeMessage,omitempty"`
}
