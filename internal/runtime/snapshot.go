package runtime

import "github.com/fabworks/contentbridge/internal/domain"

// Snapshot is a point-in-time copy of a configuration's lookup names per
// category. Validation and duplicate checking read from the snapshot;
// rebinding never does, it always goes back to the live configuration.
type Snapshot struct {
	names map[domain.Category][]string
}

// NewSnapshot copies the given name lists into an immutable snapshot.
func NewSnapshot(names map[domain.Category][]string) *Snapshot {
	copied := make(map[domain.Category][]string, len(names))
	for c, list := range names {
		copied[c] = append([]string(nil), list...)
	}
	return &Snapshot{names: copied}
}

// Names returns the lookup names captured for the category, in the order
// the configuration listed them. The returned slice is a copy.
func (s *Snapshot) Names(c domain.Category) []string {
	return append([]string(nil), s.names[c]...)
}

// Count returns the number of names captured for the category.
func (s *Snapshot) Count(c domain.Category) int {
	return len(s.names[c])
}

// ByCategory returns the full snapshot contents keyed by category. The
// returned map and slices are copies.
func (s *Snapshot) ByCategory() map[domain.Category][]string {
	out := make(map[domain.Category][]string, len(s.names))
	for c, list := range s.names {
		out[c] = append([]string(nil), list...)
	}
	return out
}
