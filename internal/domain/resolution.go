package domain

// ResolutionStatus classifies one reference entry after validation against
// the target configuration.
type ResolutionStatus string

const (
	// StatusResolved means the captured name matched a target entry.
	StatusResolved ResolutionStatus = "resolved"
	// StatusUnresolved means no target entry matched and no override was
	// supplied.
	StatusUnresolved ResolutionStatus = "unresolved"
	// StatusOverridden means an operator mapped the entry to a replacement
	// name from the target configuration.
	StatusOverridden ResolutionStatus = "overridden"
)

// ResolutionEntry is the validation verdict for one (item, category)
// reference. Entries exist only for non-nil reference slots.
type ResolutionEntry struct {
	ItemIndex    int              `json:"itemIndex"`
	FileName     string           `json:"fileName"`
	Category     Category         `json:"category"`
	Name         string           `json:"name"`
	Status       ResolutionStatus `json:"status"`
	Overridable  bool             `json:"overridable"`
	OverrideName string           `json:"overrideName,omitempty"`
}

// EffectiveName is the name the importer should bind: the operator's
// replacement when the entry was overridden, otherwise the captured name.
func (e ResolutionEntry) EffectiveName() string {
	if e.Status == StatusOverridden && e.OverrideName != "" {
		return e.OverrideName
	}
	return e.Name
}

// ResolutionReport is the ordered outcome of validating a package against
// a target configuration: items in package order, categories in manifest
// order. It is transient to a single import attempt.
type ResolutionReport struct {
	Entries []ResolutionEntry `json:"entries"`
}

// Find returns the entry for the given item index and category.
func (r *ResolutionReport) Find(itemIndex int, c Category) (ResolutionEntry, bool) {
	for _, e := range r.Entries {
		if e.ItemIndex == itemIndex && e.Category == c {
			return e, true
		}
	}
	return ResolutionEntry{}, false
}

// ForItem returns the entries belonging to one item, in category order.
func (r *ResolutionReport) ForItem(itemIndex int) []ResolutionEntry {
	var out []ResolutionEntry
	for _, e := range r.Entries {
		if e.ItemIndex == itemIndex {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns the number of entries per resolution status.
func (r *ResolutionReport) Counts() map[ResolutionStatus]int {
	counts := make(map[ResolutionStatus]int, 3)
	for _, e := range r.Entries {
		counts[e.Status]++
	}
	return counts
}

// Unresolved returns the entries still unresolved, in report order.
func (r *ResolutionReport) Unresolved() []ResolutionEntry {
	var out []ResolutionEntry
	for _, e := range r.Entries {
		if e.Status == StatusUnresolved {
			out = append(out, e)
		}
	}
	return out
}

// OverrideKey addresses one reference entry in a resolution report.
type OverrideKey struct {
	ItemIndex int
	Category  Category
}

// OverrideSelections maps report entries to operator-chosen replacement
// names. An empty name is the explicit skip sentinel: leave the entry
// unresolved. An absent key means the same. The service category never
// carries a selection.
type OverrideSelections map[OverrideKey]string
