package catalog

import (
	"fmt"

	"photostudio/models"
)

// StaticCatalogRepo serves the studio catalog from in-memory reference data.
type StaticCatalogRepo struct {
	categories []models.Category
	packages   []models.Package
	addOns     []models.AddOn
	cities     []models.City
	timeSlots  []string

	packagesByID   map[string]*models.Package
	packagesByCat  map[models.CategoryID][]models.Package
	addOnsByID     map[string]*models.AddOn
	citiesByID     map[string]*models.City
	categoriesByID map[models.CategoryID]*models.Category
}

// NewStaticCatalogRepo builds the repository from the built-in catalog data.
func NewStaticCatalogRepo() *StaticCatalogRepo {
	r := &StaticCatalogRepo{
		categories:     categories,
		packages:       packages,
		addOns:         addOns,
		cities:         cities,
		timeSlots:      timeSlots,
		packagesByID:   make(map[string]*models.Package),
		packagesByCat:  make(map[models.CategoryID][]models.Package),
		addOnsByID:     make(map[string]*models.AddOn),
		citiesByID:     make(map[string]*models.City),
		categoriesByID: make(map[models.CategoryID]*models.Category),
	}
	for i := range r.categories {
		r.categoriesByID[r.categories[i].ID] = &r.categories[i]
	}
	for i := range r.packages {
		p := &r.packages[i]
		r.packagesByID[p.ID] = p
		r.packagesByCat[p.Category] = append(r.packagesByCat[p.Category], *p)
	}
	for i := range r.addOns {
		r.addOnsByID[r.addOns[i].ID] = &r.addOns[i]
	}
	for i := range r.cities {
		r.citiesByID[r.cities[i].ID] = &r.cities[i]
	}
	return r
}

func (r *StaticCatalogRepo) Categories() []models.Category {
	return r.categories
}

func (r *StaticCatalogRepo) GetCategory(id models.CategoryID) (*models.Category, error) {
	c, ok := r.categoriesByID[id]
	if !ok {
		return nil, fmt.Errorf("category not found: %s", id)
	}
	return c, nil
}

func (r *StaticCatalogRepo) PackagesByCategory(id models.CategoryID) ([]models.Package, error) {
	if _, ok := r.categoriesByID[id]; !ok {
		return nil, fmt.Errorf("category not found: %s", id)
	}
	return r.packagesByCat[id], nil
}

func (r *StaticCatalogRepo) GetPackage(id string) (*models.Package, error) {
	p, ok := r.packagesByID[id]
	if !ok {
		return nil, fmt.Errorf("package not found: %s", id)
	}
	return p, nil
}

func (r *StaticCatalogRepo) AddOnsForCategory(id models.CategoryID) []models.AddOn {
	var eligible []models.AddOn
	for _, a := range r.addOns {
		if a.EligibleFor(id) {
			eligible = append(eligible, a)
		}
	}
	return eligible
}

func (r *StaticCatalogRepo) GetAddOn(id string) (*models.AddOn, error) {
	a, ok := r.addOnsByID[id]
	if !ok {
		return nil, fmt.Errorf("add-on not found: %s", id)
	}
	return a, nil
}

func (r *StaticCatalogRepo) Cities() []models.City {
	return r.cities
}

func (r *StaticCatalogRepo) GetCity(id string) (*models.City, error) {
	c, ok := r.citiesByID[id]
	if !ok {
		return nil, fmt.Errorf("city not found: %s", id)
	}
	return c, nil
}

func (r *StaticCatalogRepo) TimeSlots() []string {
	return r.timeSlots
}
