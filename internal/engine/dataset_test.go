package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultEntries_Invariants sanity-checks the reference dataset: every
// record must be renderable without special-casing.
func TestDefaultEntries_Invariants(t *testing.T) {
	entries := DefaultEntries()

	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Organization)
		assert.LessOrEqual(t, e.StartYear, e.EndYear, "entry %q has an inverted year span", e.Title)
	}
}

// TestDefaultEntries_Isolation: callers receive independent copies.
func TestDefaultEntries_Isolation(t *testing.T) {
	a := DefaultEntries()
	a[0].Title = "mutated"

	b := DefaultEntries()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestDatasetBounds(t *testing.T) {
	entries := []Entry{
		workEntry("a", 2015, 2018),
		eduEntry("b", 2010, 2013),
		workEntry("c", 2020, 2024),
	}

	b, ok := DatasetBounds(entries)

	assert.True(t, ok)
	assert.Equal(t, 2010, b.Min)
	assert.Equal(t, 2024, b.Max)
}

func TestDatasetBounds_Empty(t *testing.T) {
	_, ok := DatasetBounds(nil)
	assert.False(t, ok, "Empty dataset reports no bounds; the caller picks a default range")
}

func TestDefaultFilter(t *testing.T) {
	entries := DefaultEntries()
	state := DefaultFilter(entries)

	assert.True(t, state.IncludeWork)
	assert.True(t, state.IncludeEducation)

	// The reset range must keep every entry visible.
	cards := Render(entries, state)
	assert.Len(t, cards, len(entries))
}
