package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/contact"
	"github.com/tartampluch/go-folio/internal/engine"
	"github.com/tartampluch/go-folio/internal/server"
)

// GoFolioApp encapsulates the UI state, preferences, and core wiring.
type GoFolioApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server  *server.ShareServer
	Clock   engine.Clock // Injected clock for testability.
	Entries []engine.Entry

	SupportedLanguages []string

	// appliedTheme is the document state the toggle reads; it may differ
	// from storage when the startup value came from the system signal.
	appliedTheme string
	themeToggles []*widget.Button

	// Navigation open/closed state. A nil panel or toggle means the
	// component no-ops.
	navOpen   bool
	navPanel  *fyne.Container
	navToggle *widget.Button

	content *fyne.Container

	settingsWindow fyne.Window
}

// NewGoFolioApp constructs the application and wires dependencies.
func NewGoFolioApp(a fyne.App, ctx context.Context, srv *server.ShareServer) *GoFolioApp {
	return &GoFolioApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Clock:              engine.RealClock{}, // Default to real clock in production
		Entries:            engine.DefaultEntries(),
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the application services and the main UI loop.
// Initialization of every component completes before the window shows,
// so no interaction can observe a half-wired state.
func (app *GoFolioApp) Run() {
	app.SetupI18n()
	app.InitTheme()
	app.Publish()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window.SetMaster()
	app.rebuildContent()

	app.Window.Show()
	app.App.Run()
}

// Publish re-renders the shared artifacts and hands them to the server.
func (app *GoFolioApp) Publish() {
	gen := &engine.Generator{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}

	if data, err := gen.Timeline(app.Entries); err != nil {
		slog.Error(config.ErrICalEncode, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
	} else {
		app.Server.UpdateTimeline(data)
	}

	if data, err := contact.OwnerCard(app.Recipient()); err != nil {
		slog.Error(config.ErrVCardEncode, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
	} else {
		app.Server.UpdateContactCard(data)
	}
}

// Recipient resolves the contact address from the configured target.
func (app *GoFolioApp) Recipient() string {
	return contact.ResolveRecipient(app.Preferences.String(config.PrefContactTarget))
}

// buildSummaryFormatter returns a closure that localizes timeline summaries.
func (app *GoFolioApp) buildSummaryFormatter() func(title, organization string) string {
	return func(title, organization string) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyEvtSummary,
				TemplateData: map[string]interface{}{"Title": title, "Organization": organization},
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(config.FallbackEvtSummary, title, organization)
	}
}

// -----------------------------------------------------------------------------
// Theme
// -----------------------------------------------------------------------------

// StoredTheme reads the persisted preference, returning "" when storage
// holds nothing usable. Failure is soft; there is no error path.
func (app *GoFolioApp) StoredTheme() string {
	switch v := app.Preferences.String(config.PrefTheme); v {
	case config.ThemeLight, config.ThemeDark:
		return v
	default:
		return ""
	}
}

// InitTheme resolves the startup theme: stored preference, then the system
// color-scheme signal, then light. The resolved value is applied but not
// written back, so system-followers keep following until they toggle.
func (app *GoFolioApp) InitTheme() {
	pref := app.StoredTheme()
	if pref == "" {
		pref = config.ThemeLight
		if app.App.Settings().ThemeVariant() == theme.VariantDark {
			pref = config.ThemeDark
		}
	}
	app.applyTheme(pref)
}

// SetTheme applies a preference and persists it best-effort.
func (app *GoFolioApp) SetTheme(pref string) {
	app.applyTheme(pref)
	app.Preferences.SetString(config.PrefTheme, pref)
}

// ToggleTheme reads the currently applied value (app state, not storage)
// and applies the opposite.
func (app *GoFolioApp) ToggleTheme() {
	if app.appliedTheme == config.ThemeDark {
		app.SetTheme(config.ThemeLight)
	} else {
		app.SetTheme(config.ThemeDark)
	}
}

// AppliedTheme returns the document-state theme value.
func (app *GoFolioApp) AppliedTheme() string {
	return app.appliedTheme
}

// applyTheme switches the Fyne theme and refreshes every registered toggle
// control. Zero registered controls is fine.
func (app *GoFolioApp) applyTheme(pref string) {
	variant := theme.VariantLight
	if pref == config.ThemeDark {
		variant = theme.VariantDark
	}

	app.App.Settings().SetTheme(newForcedVariant(variant))
	app.appliedTheme = pref
	app.refreshThemeToggles()

	slog.Info(config.MsgThemeApplied,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTheme, pref)
}

// RegisterThemeToggle binds a control to the theme state. Its label always
// names the theme the next tap switches to.
func (app *GoFolioApp) RegisterThemeToggle(btn *widget.Button) {
	if btn == nil {
		return
	}
	app.themeToggles = append(app.themeToggles, btn)
	app.refreshThemeToggles()
}

func (app *GoFolioApp) refreshThemeToggles() {
	key := config.TKeyThemeToDark
	if app.appliedTheme == config.ThemeDark {
		key = config.TKeyThemeToLight
	}
	for _, btn := range app.themeToggles {
		btn.SetText(app.GetMsg(key))
	}
}

// -----------------------------------------------------------------------------
// Navigation
// -----------------------------------------------------------------------------

// ToggleNav flips the open/closed state of the navigation panel.
func (app *GoFolioApp) ToggleNav() {
	app.setNavOpen(!app.navOpen)
}

// CloseNav forces the panel closed; used by every navigation link.
func (app *GoFolioApp) CloseNav() {
	app.setNavOpen(false)
}

// NavOpen reports the current panel state.
func (app *GoFolioApp) NavOpen() bool {
	return app.navOpen
}

func (app *GoFolioApp) setNavOpen(open bool) {
	if app.navPanel == nil {
		return
	}
	if open {
		app.navPanel.Show()
	} else {
		app.navPanel.Hide()
	}
	app.navOpen = open

	slog.Debug(config.MsgNavToggled,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyOpen, open)
}

// -----------------------------------------------------------------------------
// Layout
// -----------------------------------------------------------------------------

// rebuildContent assembles the window from scratch. Called at startup and
// again after a language change so every label picks up the new locale.
func (app *GoFolioApp) rebuildContent() {
	if app.Window == nil {
		return
	}

	// Header: nav toggle, greeting + year, theme toggle.
	app.navToggle = widget.NewButtonWithIcon("", theme.MenuIcon(), app.ToggleNav)

	greeting := widget.NewLabel(app.GreetingText())
	greeting.TextStyle = fyne.TextStyle{Bold: true}

	yearLabel := widget.NewLabel(strconv.Itoa(app.Clock.Now().Year()))

	themeBtn := widget.NewButton("", app.ToggleTheme)
	app.themeToggles = nil
	app.RegisterThemeToggle(themeBtn)

	header := container.NewBorder(nil, nil,
		container.NewHBox(app.navToggle, greeting, yearLabel),
		themeBtn,
	)

	// Pages.
	resumePage := app.buildResumeView()
	contactPage := app.buildContactView()

	app.content = container.NewStack(resumePage, contactPage)
	contactPage.Hide()

	showPage := func(page fyne.CanvasObject) {
		for _, o := range app.content.Objects {
			o.Hide()
		}
		page.Show()
		app.CloseNav()
	}

	// Navigation panel, closed by default.
	app.navPanel = container.NewVBox(
		widget.NewButton(app.GetMsg(config.TKeyNavResume), func() { showPage(resumePage) }),
		widget.NewButton(app.GetMsg(config.TKeyNavContact), func() { showPage(contactPage) }),
		widget.NewButton(app.GetMsg(config.TKeyNavSettings), func() {
			app.CloseNav()
			app.ShowSettingsWindow()
		}),
	)
	app.navPanel.Hide()
	app.navOpen = false

	app.Window.SetContent(container.NewBorder(header, nil, app.navPanel, nil, app.content))
}

// GreetingText localizes the daypart greeting for the current hour.
func (app *GoFolioApp) GreetingText() string {
	hour := app.Clock.Now().Hour()
	key := engine.GreetingKey(hour)

	msg := app.GetMsg(key)
	if msg == key {
		msg = engine.FallbackGreeting(key)
	}

	slog.Debug(config.MsgGreetingSet,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyHour, hour,
		config.LogKeyKey, key)

	return msg
}
