package domain

import "fmt"

// Category identifies one kind of named reference a content item can carry.
// The values are the wire spellings used in manifests, reports and API
// payloads.
type Category string

const (
	CategoryService           Category = "service"
	CategoryMaterial          Category = "material"
	CategorySpecification     Category = "specification"
	CategorySection           Category = "section"
	CategoryPriceList         Category = "price_list"
	CategorySupplierGroup     Category = "supplier_group"
	CategoryInstallationTimes Category = "installation_times"
	CategoryFabricationTimes  Category = "fabrication_times"
)

// categoryOrder is the canonical reporting order: the order the reference
// slots appear in the manifest, service first.
var categoryOrder = []Category{
	CategoryService,
	CategoryMaterial,
	CategorySpecification,
	CategorySection,
	CategoryPriceList,
	CategorySupplierGroup,
	CategoryInstallationTimes,
	CategoryFabricationTimes,
}

// Categories returns every reference category in canonical order.
// The returned slice is a copy and safe for callers to modify.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is a known reference category.
func (c Category) Valid() bool {
	switch c {
	case CategoryService, CategoryMaterial, CategorySpecification, CategorySection,
		CategoryPriceList, CategorySupplierGroup, CategoryInstallationTimes, CategoryFabricationTimes:
		return true
	}
	return false
}

// Rebindable reports whether references of this category may be redirected
// to a different target entry during import. Service assignments are
// reported for operator awareness but the target runtime keeps them
// read-only, so they are never rebindable.
func (c Category) Rebindable() bool {
	return c.Valid() && c != CategoryService
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a wire label into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown reference category %q", ErrInvalidInput, s)
	}
	return c, nil
}
