package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-folio/internal/config"
)

// Generator renders the résumé timeline as an iCalendar document for the
// share server.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the UI to inject localized event summaries.
	FormatSummary func(title, organization string) string
}

// Timeline encodes one all-day event per entry, spanning the entry's years.
// An empty dataset yields the minimal valid stub calendar.
func (g *Generator) Timeline(entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, e := range entries {
		event := ical.NewEvent()

		// Deterministic UID so feed clients keep event identity across refreshes.
		input := fmt.Sprintf(config.FormatHashInput, e.Title, e.Organization, e.StartYear)
		hash := sha256.Sum256([]byte(config.UIDSalt + input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, e.StartYear, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackEvtSummary, e.Title, e.Organization)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(e.Title, e.Organization)
		}
		event.Props.SetText(config.PropSummary, summary)

		if e.Location != "" {
			event.Props.SetText(config.PropLocation, e.Location)
		}
		if len(e.Details) > 0 {
			event.Props.SetText(config.PropDescription, strings.Join(e.Details, "\n"))
		}

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(time.Date(e.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC))
		event.Props.Set(dtStart)

		// DTEND of an all-day event is exclusive, so the span runs through
		// Dec 31 of EndYear.
		dtEnd := ical.NewProp(config.PropDTEnd)
		dtEnd.SetDate(time.Date(e.EndYear+1, time.January, 1, 0, 0, 0, 0, time.UTC))
		event.Props.Set(dtEnd)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgTimelineMade,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(entries),
		config.LogKeySizeBytes, buf.Len(),
	)

	return buf.Bytes(), nil
}
