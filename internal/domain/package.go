package domain

import "time"

// Package is the decoded manifest of an exported content package: the name
// of the configuration the items came from, export provenance, and one
// record per exported item. It is written once at export time and read once
// at import time.
type Package struct {
	ConfigurationName string    `json:"configurationName"`
	ExportedBy        string    `json:"exportedBy"`
	ExportedAt        time.Time `json:"exportedAt"`
	Items             []Item    `json:"items"`
}

// Item is one exported content unit as recorded in the manifest. The
// payload itself stays an opaque file next to the manifest; everything the
// transfer engine reasons about lives here.
type Item struct {
	FileName      string       `json:"fileName"`
	SourceFolder  string       `json:"sourceFolder"` // original hierarchy path, informational only
	CID           int          `json:"cid"`          // source-side positional index at export time, historical record only
	DatabaseID    string       `json:"databaseId"`
	IsProductList bool         `json:"isProductList"`
	References    ReferenceSet `json:"references"`
	ProductList   *ProductList `json:"productList,omitempty"`
}

// ReferenceSet holds the reference names captured from one item, one slot
// per category. A nil slot means the source item carried no reference of
// that kind; it is never treated as a resolution failure.
type ReferenceSet struct {
	ServiceName                *string `json:"serviceName"`
	MaterialName               *string `json:"materialName"`
	SpecificationName          *string `json:"specificationName"`
	SectionDescription         *string `json:"sectionDescription"`
	PriceListName              *string `json:"priceListName"`
	SupplierGroupName          *string `json:"supplierGroupName"`
	InstallationTimesTableName *string `json:"installationTimesTableName"`
	FabricationTimesTableName  *string `json:"fabricationTimesTableName"`
}

// Get returns the captured name for the given category and whether the
// item carries a reference of that kind at all.
func (r *ReferenceSet) Get(c Category) (string, bool) {
	p := r.slot(c)
	if p == nil || *p == nil {
		return "", false
	}
	return **p, true
}

// Set records the captured name for the given category. Unknown categories
// are ignored.
func (r *ReferenceSet) Set(c Category, name string) {
	if p := r.slot(c); p != nil {
		v := name
		*p = &v
	}
}

func (r *ReferenceSet) slot(c Category) **string {
	switch c {
	case CategoryService:
		return &r.ServiceName
	case CategoryMaterial:
		return &r.MaterialName
	case CategorySpecification:
		return &r.SpecificationName
	case CategorySection:
		return &r.SectionDescription
	case CategoryPriceList:
		return &r.PriceListName
	case CategorySupplierGroup:
		return &r.SupplierGroupName
	case CategoryInstallationTimes:
		return &r.InstallationTimesTableName
	case CategoryFabricationTimes:
		return &r.FabricationTimesTableName
	}
	return nil
}

// ProductList is the row inventory of a product-list item, captured so the
// receiving side can inspect contents without opening the payload.
type ProductList struct {
	Revision string       `json:"revision"`
	Rows     []ProductRow `json:"rows"`
}

// ProductRow is one entry of a product list.
type ProductRow struct {
	Name        string   `json:"name"`
	Alias       string   `json:"alias"`
	DatabaseID  string   `json:"databaseId"`
	OrderNumber string   `json:"orderNumber"`
	BoughtOut   bool     `json:"boughtOut"`
	Weight      *float64 `json:"weight"` // nullable: not every row carries a weight
}
