// Package validate derives a resolution report from a loaded package and a
// target lookup snapshot. Matching is case-insensitive by Unicode case
// folding unless the transfer policy asks for byte-exact names; either
// way the policy applies uniformly to all eight categories.
//
// Validation is pure: two read-only inputs, one derived report, no I/O.
// It runs before any file reaches the target folder.
package validate

import (
	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/naming"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// Validator resolves captured reference names against snapshots.
type Validator struct {
	caseSensitive bool
}

func New(caseSensitive bool) *Validator {
	return &Validator{caseSensitive: caseSensitive}
}

// Validate builds the resolution report for pkg against snap: one entry
// per non-nil reference slot, items in package order, categories in
// manifest order. Service entries are informational, they resolve like
// any other category but are never overridable.
func (v *Validator) Validate(pkg *domain.Package, snap *runtime.Snapshot) *domain.ResolutionReport {
	indexes := make(map[domain.Category]*naming.Index, 8)
	for _, category := range domain.Categories() {
		indexes[category] = naming.NewIndex(snap.Names(category), v.caseSensitive)
	}

	report := &domain.ResolutionReport{}
	for itemIndex, item := range pkg.Items {
		for _, category := range domain.Categories() {
			name, ok := item.References.Get(category)
			if !ok {
				// No reference of this kind on the item, nothing to resolve
				continue
			}

			status := domain.StatusUnresolved
			if _, found := indexes[category].Resolve(name); found {
				status = domain.StatusResolved
			}

			report.Entries = append(report.Entries, domain.ResolutionEntry{
				ItemIndex:   itemIndex,
				FileName:    item.FileName,
				Category:    category,
				Name:        name,
				Status:      status,
				Overridable: category.Rebindable(),
			})
		}
	}
	return report
}
