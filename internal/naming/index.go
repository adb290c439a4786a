// Package naming implements the name matching used when captured
// reference names are resolved against a configuration's lookup entities.
// Matching is case-insensitive via Unicode case folding by default; exact
// byte comparison is available for configurations that distinguish case.
package naming

import "golang.org/x/text/cases"

// Key returns the canonical case-folded matching key for a lookup name.
func Key(s string) string {
	// cases.Caser is stateful, take a fresh one per call
	return cases.Fold().String(s)
}

// Index resolves names against a fixed list of lookup entity names.
type Index struct {
	caseSensitive bool

	// Mapping: matching key -> first name registered under it
	byKey map[string]string
}

// NewIndex builds an index over names. With caseSensitive set, names match
// byte-for-byte; otherwise they match under case folding. When two names
// collide on the same key the first one wins.
func NewIndex(names []string, caseSensitive bool) *Index {
	ix := &Index{
		caseSensitive: caseSensitive,
		byKey:         make(map[string]string, len(names)),
	}
	for _, name := range names {
		k := ix.key(name)
		if _, seen := ix.byKey[k]; !seen {
			ix.byKey[k] = name
		}
	}
	return ix
}

// Resolve matches name against the index and returns the canonical name
// as the configuration lists it.
func (ix *Index) Resolve(name string) (string, bool) {
	canonical, ok := ix.byKey[ix.key(name)]
	return canonical, ok
}

// Len returns the number of distinct keys in the index.
func (ix *Index) Len() int {
	return len(ix.byKey)
}

func (ix *Index) key(name string) string {
	if ix.caseSensitive {
		return name
	}
	return Key(name)
}
