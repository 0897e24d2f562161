package catalog

import "photostudio/models"

// CatalogRepository provides read access to the static service catalog.
// The catalog is loaded once and never mutated, so implementations are safe
// for unsynchronized concurrent reads.
type CatalogRepository interface {
	Categories() []models.Category
	GetCategory(id models.CategoryID) (*models.Category, error)
	PackagesByCategory(id models.CategoryID) ([]models.Package, error)
	GetPackage(id string) (*models.Package, error)
	// AddOnsForCategory returns add-ons whose eligible-category list contains
	// the given category, in catalog order.
	AddOnsForCategory(id models.CategoryID) []models.AddOn
	GetAddOn(id string) (*models.AddOn, error)
	Cities() []models.City
	GetCity(id string) (*models.City, error)
	TimeSlots() []string
}
