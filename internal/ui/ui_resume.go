package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/engine"
)

// resumeView owns the filter controls and the rendered card list.
type resumeView struct {
	app *GoFolioApp

	checkWork *widget.Check
	checkEdu  *widget.Check
	entryFrom *NumericalEntry
	entryTo   *NumericalEntry

	list   *fyne.Container
	root   fyne.CanvasObject
	bounds engine.Bounds
}

// buildResumeView assembles the résumé page.
func (app *GoFolioApp) buildResumeView() fyne.CanvasObject {
	return app.newResumeView().root
}

// newResumeView wires the filter controls and the card list. Every control
// change triggers a full re-render.
func (app *GoFolioApp) newResumeView() *resumeView {
	v := &resumeView{app: app}

	bounds, ok := engine.DatasetBounds(app.Entries)
	if !ok {
		// Empty dataset: seed the year controls with the current year so
		// the view stays usable.
		year := app.Clock.Now().Year()
		bounds = engine.Bounds{Min: year, Max: year}
	}
	v.bounds = bounds

	v.checkWork = widget.NewCheck(app.GetMsg(config.TKeyLblIncludeWork), func(bool) { v.render() })
	v.checkEdu = widget.NewCheck(app.GetMsg(config.TKeyLblIncludeEdu), func(bool) { v.render() })

	v.entryFrom = NewNumericalEntry()
	v.entryTo = NewNumericalEntry()
	v.entryFrom.OnChanged = func(string) { v.render() }
	v.entryTo.OnChanged = func(string) { v.render() }

	resetBtn := widget.NewButton(app.GetMsg(config.TKeyBtnReset), v.reset)

	v.list = container.NewVBox()

	// Seed defaults without triggering a render per control.
	v.applyDefaults()
	v.render()

	controls := container.NewVBox(
		container.NewHBox(v.checkWork, v.checkEdu),
		container.NewGridWithColumns(config.LayoutColumnsDouble,
			widget.NewLabel(app.GetMsg(config.TKeyLblFromYear)), v.entryFrom,
			widget.NewLabel(app.GetMsg(config.TKeyLblToYear)), v.entryTo,
		),
		resetBtn,
		widget.NewSeparator(),
	)

	v.root = container.NewBorder(controls, nil, nil, nil, container.NewVScroll(v.list))
	return v
}

// currentState reads the controls into a filter state. An empty or
// non-numeric year entry falls back to the dataset bound.
func (v *resumeView) currentState() engine.FilterState {
	return engine.FilterState{
		IncludeWork:      v.checkWork.Checked,
		IncludeEducation: v.checkEdu.Checked,
		FromYear:         v.entryFrom.Int(v.bounds.Min),
		ToYear:           v.entryTo.Int(v.bounds.Max),
	}
}

// applyDefaults sets every control to its reset value without rendering.
func (v *resumeView) applyDefaults() {
	v.checkWork.Checked = true
	v.checkEdu.Checked = true
	v.entryFrom.Text = fmt.Sprintf("%d", v.bounds.Min)
	v.entryTo.Text = fmt.Sprintf("%d", v.bounds.Max)
	v.checkWork.Refresh()
	v.checkEdu.Refresh()
	v.entryFrom.Refresh()
	v.entryTo.Refresh()
}

// reset restores defaults and re-renders once.
func (v *resumeView) reset() {
	v.applyDefaults()
	v.render()

	slog.Debug(config.MsgFilterReset,
		config.LogKeyComponent, config.CompUIResume,
		config.LogKeyFromYear, v.bounds.Min,
		config.LogKeyToYear, v.bounds.Max)
}

// render rebuilds the card list from the current filter state.
func (v *resumeView) render() {
	state := v.currentState()
	cards := engine.Render(v.app.Entries, state)

	v.list.Objects = nil
	if len(cards) == 0 {
		empty := widget.NewLabel(v.app.GetMsg(config.TKeyMsgNoMatch))
		empty.Alignment = fyne.TextAlignCenter
		v.list.Add(empty)
	} else {
		for _, c := range cards {
			v.list.Add(v.buildCard(c))
		}
	}
	v.list.Refresh()

	slog.Debug(config.MsgResumeRendered,
		config.LogKeyComponent, config.CompUIResume,
		config.LogKeyCount, len(cards))
}

// buildCard renders one entry: badge and metadata line, then detail bullets.
func (v *resumeView) buildCard(c engine.Card) fyne.CanvasObject {
	badge := v.app.GetMsg(config.TKeyBadgeWork)
	if c.Category == engine.CategoryEducation {
		badge = v.app.GetMsg(config.TKeyBadgeEducation)
	}

	meta := widget.NewLabel(fmt.Sprintf("%s · %s · %s", badge, c.Location, c.YearSpan))
	meta.TextStyle = fyne.TextStyle{Italic: true}

	body := container.NewVBox(meta)
	if len(c.Details) > 0 {
		var sb strings.Builder
		for i, d := range c.Details {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(config.DetailBullet)
			sb.WriteString(d)
		}
		details := widget.NewLabel(sb.String())
		details.Wrapping = fyne.TextWrapWord
		body.Add(details)
	}

	return widget.NewCard(c.Title, c.Organization, body)
}
