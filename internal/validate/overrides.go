package validate

import (
	"fmt"

	"github.com/fabworks/contentbridge/internal/domain"
)

// CheckSelections rejects override selections that are invalid on their
// face: unknown categories, the service category, and item indices outside
// the package. Selections addressed at entries that cannot change (already
// resolved, or no such reference on the item) are legal and simply have no
// effect in Merge.
func CheckSelections(selections domain.OverrideSelections, itemCount int) error {
	for key := range selections {
		if !key.Category.Valid() {
			return fmt.Errorf("%w: unknown reference category %q", domain.ErrInvalidInput, string(key.Category))
		}
		if key.Category == domain.CategoryService {
			return fmt.Errorf("%w: service references are read-only", domain.ErrOverrideNotAllowed)
		}
		if key.ItemIndex < 0 || key.ItemIndex >= itemCount {
			return fmt.Errorf("%w: item %d of %d", domain.ErrItemIndexOutOfRange, key.ItemIndex, itemCount)
		}
	}
	return nil
}

// Merge returns a copy of report with selections applied. Only unresolved
// overridable entries change: a non-empty replacement upgrades the entry
// to overridden, an empty replacement is the explicit skip and leaves it
// unresolved. Everything else passes through untouched.
func Merge(report *domain.ResolutionReport, selections domain.OverrideSelections) *domain.ResolutionReport {
	merged := &domain.ResolutionReport{
		Entries: make([]domain.ResolutionEntry, len(report.Entries)),
	}
	copy(merged.Entries, report.Entries)

	if len(selections) == 0 {
		return merged
	}

	for i := range merged.Entries {
		entry := &merged.Entries[i]
		if entry.Status != domain.StatusUnresolved || !entry.Overridable {
			continue
		}
		replacement, ok := selections[domain.OverrideKey{ItemIndex: entry.ItemIndex, Category: entry.Category}]
		if !ok || replacement == "" {
			continue
		}
		entry.Status = domain.StatusOverridden
		entry.OverrideName = replacement
	}
	return merged
}
