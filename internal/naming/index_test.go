package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex_FoldMatching(t *testing.T) {
	ix := NewIndex([]string{"Copper 15mm", "PVC Schedule 40", "Straße"}, false)

	tests := []struct {
		name      string
		lookup    string
		want      string
		wantFound bool
	}{
		{"exact spelling", "Copper 15mm", "Copper 15mm", true},
		{"case difference", "copper 15MM", "Copper 15mm", true},
		{"folded sharp s", "STRASSE", "Straße", true},
		{"unknown name", "Copper 22mm", "", false},
		{"no trimming", " Copper 15mm", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ix.Resolve(tt.lookup)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndex_CaseSensitive(t *testing.T) {
	ix := NewIndex([]string{"Copper 15mm"}, true)

	_, ok := ix.Resolve("copper 15mm")
	assert.False(t, ok)

	got, ok := ix.Resolve("Copper 15mm")
	assert.True(t, ok)
	assert.Equal(t, "Copper 15mm", got)
}

func TestIndex_FirstNameWinsOnCollision(t *testing.T) {
	ix := NewIndex([]string{"Steel", "STEEL"}, false)

	assert.Equal(t, 1, ix.Len())

	got, ok := ix.Resolve("steel")
	assert.True(t, ok)
	assert.Equal(t, "Steel", got)
}
