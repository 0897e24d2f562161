package pricing

import (
	"testing"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteService() *DefaultQuoteService {
	return &DefaultQuoteService{Catalog: catalogRepo.NewStaticCatalogRepo()}
}

func TestBuildQuoteAdditivity(t *testing.T) {
	svc := newQuoteService()

	quote, err := svc.BuildQuote("wedding-premium", []string{"drone"}, models.BillingOneTime)
	require.NoError(t, err)

	assert.Equal(t, int64(89999), quote.PackagePrice)
	assert.Equal(t, int64(9999), quote.AddOnTotal)
	assert.Equal(t, int64(99998), quote.Total)
	assert.Zero(t, quote.MonthlyTotal)
	assert.Zero(t, quote.SixMonthTotal)
}

func TestBuildQuoteSumsAllAddOns(t *testing.T) {
	svc := newQuoteService()

	quote, err := svc.BuildQuote("wedding-basic", []string{"drone", "rush", "album"}, models.BillingOneTime)
	require.NoError(t, err)

	assert.Equal(t, int64(49999+9999+3999+6999), quote.Total)
}

func TestBuildQuoteWithoutAddOns(t *testing.T) {
	svc := newQuoteService()

	quote, err := svc.BuildQuote("portrait-basic", nil, models.BillingOneTime)
	require.NoError(t, err)

	assert.Equal(t, int64(7999), quote.Total)
	assert.Zero(t, quote.AddOnTotal)
}

func TestMonthlyDiscountLaw(t *testing.T) {
	svc := newQuoteService()
	catalog := catalogRepo.NewStaticCatalogRepo()

	packages, err := catalog.PackagesByCategory(models.CategoryCommercial)
	require.NoError(t, err)
	require.NotEmpty(t, packages)

	for _, pkg := range packages {
		quote, err := svc.BuildQuote(pkg.ID, nil, models.BillingMonthly)
		require.NoError(t, err, pkg.ID)

		assert.Equal(t, MonthlyAmount(quote.Total), quote.MonthlyTotal, pkg.ID)
		assert.Equal(t, quote.MonthlyTotal*6, quote.SixMonthTotal, pkg.ID)
	}
}

func TestMonthlyQuoteWithAddOns(t *testing.T) {
	svc := newQuoteService()

	quote, err := svc.BuildQuote("commercial-professional", []string{"social"}, models.BillingMonthly)
	require.NoError(t, err)

	// 99999 + 3999 = 103998; round(103998 * 0.9 / 6) = 15600.
	assert.Equal(t, int64(103998), quote.Total)
	assert.Equal(t, int64(15600), quote.MonthlyTotal)
	assert.Equal(t, int64(93600), quote.SixMonthTotal)
}

func TestMonthlyRejectedOutsideEligibleCategories(t *testing.T) {
	svc := newQuoteService()

	_, err := svc.BuildQuote("wedding-premium", nil, models.BillingMonthly)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "monthly billing")
}

func TestIneligibleAddOnRejected(t *testing.T) {
	svc := newQuoteService()

	// Drone photography is not offered for product shoots.
	_, err := svc.BuildQuote("product-basic", []string{"drone"}, models.BillingOneTime)
	assert.Error(t, err)
}

func TestUnknownPackageRejected(t *testing.T) {
	svc := newQuoteService()

	_, err := svc.BuildQuote("no-such-package", nil, models.BillingOneTime)
	assert.Error(t, err)
}
