package engine

import (
	"fmt"

	"github.com/tartampluch/go-folio/internal/config"
)

// Category classifies a résumé entry.
type Category int

const (
	CategoryWork Category = iota
	CategoryEducation
)

// String returns a stable identifier used in logs and UID hashing,
// not a display label (the UI localizes badges separately).
func (c Category) String() string {
	if c == CategoryEducation {
		return "education"
	}
	return "work"
}

// Entry is one résumé record. Entries are immutable and fixed at process
// start; the dataset is a static reference list owned by this package.
// Invariant: StartYear <= EndYear.
type Entry struct {
	Category     Category
	Title        string
	Organization string
	Location     string
	StartYear    int
	EndYear      int

	// Details are rendered as bullets in this exact order.
	Details []string
}

// FilterState is derived transiently from the UI controls on every render.
// It is never persisted.
type FilterState struct {
	IncludeWork      bool
	IncludeEducation bool
	FromYear         int
	ToYear           int
}

// Bounds holds the min/max year over all start and end years of a dataset.
// It seeds the default year controls only; filtering never consults it.
type Bounds struct {
	Min int
	Max int
}

// Card is the render model for one entry. The presentation layer turns
// cards into widgets; the engine's contract ends here.
type Card struct {
	Category     Category
	Title        string
	Organization string
	Location     string
	YearSpan     string
	Details      []string
}

// YearSpan formats an entry's years for display, e.g. "2019–2023".
func (e Entry) YearSpan() string {
	return fmt.Sprintf(config.FormatYearSpan, e.StartYear, e.EndYear)
}
