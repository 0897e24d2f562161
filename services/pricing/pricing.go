package pricing

import (
	"fmt"
	"math"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"
)

// Monthly billing amortizes the discounted total over a fixed contract length.
const (
	monthlyDiscount = 0.9
	contractMonths  = 6
)

// DefaultQuoteService prices against the static catalog.
type DefaultQuoteService struct {
	Catalog catalogRepo.CatalogRepository
}

func (s *DefaultQuoteService) BuildQuote(packageID string, addOnIDs []string, cycle models.BillingCycle) (*models.Quote, error) {
	pkg, err := s.Catalog.GetPackage(packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to price package: %w", err)
	}

	var addOnTotal int64
	for _, id := range addOnIDs {
		addOn, err := s.Catalog.GetAddOn(id)
		if err != nil {
			return nil, fmt.Errorf("failed to price add-on: %w", err)
		}
		if !addOn.EligibleFor(pkg.Category) {
			return nil, fmt.Errorf("add-on %s is not offered for %s packages", addOn.ID, pkg.Category)
		}
		addOnTotal += addOn.Price
	}

	quote := &models.Quote{
		PackagePrice: pkg.Price,
		AddOnTotal:   addOnTotal,
		Total:        pkg.Price + addOnTotal,
		BillingCycle: cycle,
	}

	if cycle == models.BillingMonthly {
		category, err := s.Catalog.GetCategory(pkg.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		if !category.HasMonthlyOption {
			return nil, fmt.Errorf("monthly billing is not offered for %s packages", pkg.Category)
		}
		quote.MonthlyTotal = MonthlyAmount(quote.Total)
		quote.SixMonthTotal = quote.MonthlyTotal * contractMonths
	}

	return quote, nil
}

// MonthlyAmount computes the per-month installment for a one-time total:
// a 10%-discounted 6-month amortization, rounded to the nearest whole unit.
func MonthlyAmount(total int64) int64 {
	return int64(math.Round(float64(total) * monthlyDiscount / contractMonths))
}
