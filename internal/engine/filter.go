package engine

import (
	"log/slog"
	"sort"

	"github.com/tartampluch/go-folio/internal/config"
)

// Matches reports whether the entry survives the filter: its category must
// be included and its year span must intersect the requested range at all
// (inclusive overlap, not containment).
func (s FilterState) Matches(e Entry) bool {
	switch e.Category {
	case CategoryWork:
		if !s.IncludeWork {
			return false
		}
	case CategoryEducation:
		if !s.IncludeEducation {
			return false
		}
	}
	return e.EndYear >= s.FromYear && e.StartYear <= s.ToYear
}

// Render filters and orders the entries and returns their card models.
// Survivors are sorted descending by EndYear, ties descending by StartYear;
// the sort is stable so equal entries keep their dataset order. An empty
// result returns an empty (non-nil) slice; the presentation layer shows the
// "no match" placeholder in that case.
func Render(entries []Entry, state FilterState) []Card {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if state.Matches(e) {
			kept = append(kept, e)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].EndYear != kept[j].EndYear {
			return kept[i].EndYear > kept[j].EndYear
		}
		return kept[i].StartYear > kept[j].StartYear
	})

	cards := make([]Card, 0, len(kept))
	for _, e := range kept {
		cards = append(cards, Card{
			Category:     e.Category,
			Title:        e.Title,
			Organization: e.Organization,
			Location:     e.Location,
			YearSpan:     e.YearSpan(),
			Details:      e.Details,
		})
	}

	slog.Debug(config.MsgResumeRendered,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(cards),
		config.LogKeyWork, state.IncludeWork,
		config.LogKeyEducation, state.IncludeEducation,
		config.LogKeyFromYear, state.FromYear,
		config.LogKeyToYear, state.ToYear,
	)

	return cards
}
