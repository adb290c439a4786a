package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceSet_GetSet(t *testing.T) {
	var refs ReferenceSet

	// Empty set carries nothing
	for _, c := range Categories() {
		_, ok := refs.Get(c)
		assert.False(t, ok, "category %s", c)
	}

	refs.Set(CategoryMaterial, "Copper 15mm")
	refs.Set(CategorySection, "")

	name, ok := refs.Get(CategoryMaterial)
	assert.True(t, ok)
	assert.Equal(t, "Copper 15mm", name)

	// An empty string is still a captured reference, distinct from a nil slot
	name, ok = refs.Get(CategorySection)
	assert.True(t, ok)
	assert.Equal(t, "", name)

	_, ok = refs.Get(CategoryPriceList)
	assert.False(t, ok)

	// Unknown categories are ignored, not panics
	refs.Set(Category("bogus"), "x")
	_, ok = refs.Get(Category("bogus"))
	assert.False(t, ok)
}

func TestReferenceSet_WireNames(t *testing.T) {
	var refs ReferenceSet
	refs.Set(CategoryInstallationTimes, "NL Standard")

	raw, err := json.Marshal(&refs)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	// All eight slots are always present; absent references serialize as null
	assert.Len(t, fields, 8)
	assert.Equal(t, "NL Standard", fields["installationTimesTableName"])
	assert.Nil(t, fields["serviceName"])
	assert.Nil(t, fields["sectionDescription"])
}

func TestResolutionEntry_EffectiveName(t *testing.T) {
	entry := ResolutionEntry{Name: "Old PL", Status: StatusUnresolved}
	assert.Equal(t, "Old PL", entry.EffectiveName())

	entry.Status = StatusOverridden
	entry.OverrideName = "New PL"
	assert.Equal(t, "New PL", entry.EffectiveName())
}

func TestResolutionReport_FindAndCounts(t *testing.T) {
	report := ResolutionReport{Entries: []ResolutionEntry{
		{ItemIndex: 0, Category: CategoryService, Name: "Piping", Status: StatusResolved},
		{ItemIndex: 0, Category: CategoryMaterial, Name: "PVC", Status: StatusUnresolved},
		{ItemIndex: 1, Category: CategoryMaterial, Name: "PE", Status: StatusOverridden, OverrideName: "PE 100"},
	}}

	e, ok := report.Find(0, CategoryMaterial)
	assert.True(t, ok)
	assert.Equal(t, "PVC", e.Name)

	_, ok = report.Find(2, CategoryMaterial)
	assert.False(t, ok)

	counts := report.Counts()
	assert.Equal(t, 1, counts[StatusResolved])
	assert.Equal(t, 1, counts[StatusUnresolved])
	assert.Equal(t, 1, counts[StatusOverridden])

	unresolved := report.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, CategoryMaterial, unresolved[0].Category)
	assert.Equal(t, 0, unresolved[0].ItemIndex)

	assert.Len(t, report.ForItem(0), 2)
}

func TestItemImportResult_AddError(t *testing.T) {
	result := ItemImportResult{FileName: "elbow.itm", Success: true}

	result.AddWarning("thumbnail missing")
	assert.True(t, result.Success)

	result.AddError("save failed")
	assert.False(t, result.Success)
	assert.Equal(t, []string{"save failed"}, result.Errors)
	assert.Equal(t, []string{"thumbnail missing"}, result.Warnings)
}
