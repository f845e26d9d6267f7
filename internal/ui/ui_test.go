package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/server"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with mocked dependencies.
func setupTestApp(t *testing.T) *GoFolioApp {
	// Initialize headless driver
	a := test.NewApp()

	// Use port "0" to bind to any free port during tests
	srv := server.NewShareServer("0")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewGoFolioApp(a, ctx, srv)

	// Default MockClock to a neutral date if not overridden by test
	app.Clock = MockClock{CurrentTime: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)}

	// Manually load I18n as Run() is skipped
	app.SetupI18n()

	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)

	// Case 1: English (Default)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Settings", app.GetMsg(config.TKeyNavSettings))

	// Case 2: French
	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Paramètres", app.GetMsg(config.TKeyNavSettings))
}

func TestLocalization_SummaryFormatter(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	formatter := app.buildSummaryFormatter()
	assert.Equal(t, "Dev at Acme", formatter("Dev", "Acme"))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	formatter = app.buildSummaryFormatter()
	assert.Equal(t, "Dev chez Acme", formatter("Dev", "Acme"))
}

// -----------------------------------------------------------------------------
// Greeting Tests
// -----------------------------------------------------------------------------

func TestGreetingText_Localized(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	tests := []struct {
		hour     int
		expected string
	}{
		{3, "Good night"},
		{9, "Good morning"},
		{14, "Good afternoon"},
		{19, "Good evening"},
		{23, "Good night"},
	}

	for _, tt := range tests {
		app.Clock = MockClock{CurrentTime: time.Date(2026, 8, 29, tt.hour, 0, 0, 0, time.UTC)}
		assert.Equal(t, tt.expected, app.GreetingText(), "hour %d", tt.hour)
	}
}

// TestGreetingText_Fallback: without a localizer the English labels are used
// rather than raw translation keys.
func TestGreetingText_Fallback(t *testing.T) {
	a := test.NewApp()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewGoFolioApp(a, ctx, server.NewShareServer("0"))
	app.Clock = MockClock{CurrentTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)}
	// SetupI18n intentionally skipped.

	assert.Equal(t, "Good morning", app.GreetingText())
}

// -----------------------------------------------------------------------------
// Theme Tests
// -----------------------------------------------------------------------------

func TestTheme_InitWithStoredPreference(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefTheme, config.ThemeDark)

	app.InitTheme()

	assert.Equal(t, config.ThemeDark, app.AppliedTheme())
}

func TestTheme_InitWithoutPreferenceFollowsSystem(t *testing.T) {
	app := setupTestApp(t)

	app.InitTheme()

	expected := config.ThemeLight
	if app.App.Settings().ThemeVariant() == theme.VariantDark {
		expected = config.ThemeDark
	}
	assert.Equal(t, expected, app.AppliedTheme())

	// Startup resolution must not pin the preference: system-followers keep
	// following until they toggle explicitly.
	assert.Empty(t, app.Preferences.String(config.PrefTheme))
}

func TestTheme_InitIgnoresGarbageValue(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefTheme, "solarized")

	app.InitTheme()

	assert.Contains(t, []string{config.ThemeLight, config.ThemeDark}, app.AppliedTheme(),
		"Unknown stored value is treated as unset")
}

func TestTheme_ToggleReadsAppliedState(t *testing.T) {
	app := setupTestApp(t)
	app.InitTheme()
	original := app.AppliedTheme()

	app.ToggleTheme()
	assert.NotEqual(t, original, app.AppliedTheme())
	assert.Equal(t, app.AppliedTheme(), app.Preferences.String(config.PrefTheme),
		"Toggling persists the new value")

	app.ToggleTheme()
	assert.Equal(t, original, app.AppliedTheme(), "Two toggles return to the original theme")
}

// TestTheme_ToggleButtonLabel: a registered toggle always names the theme
// it switches to, and re-applying updates it.
func TestTheme_ToggleButtonLabel(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	app.applyTheme(config.ThemeLight)

	btn := widget.NewButton("", nil)
	app.RegisterThemeToggle(btn)
	assert.Equal(t, "Dark mode", btn.Text, "Light applied: the control offers dark")

	app.ToggleTheme()
	assert.Equal(t, "Light mode", btn.Text)

	// Nil registration is tolerated.
	app.RegisterThemeToggle(nil)
	app.ToggleTheme()
	assert.Equal(t, "Dark mode", btn.Text)
}

// -----------------------------------------------------------------------------
// Navigation Tests
// -----------------------------------------------------------------------------

func TestNav_ToggleAndClose(t *testing.T) {
	app := setupTestApp(t)
	app.Window = app.App.NewWindow("test")
	defer app.Window.Close()
	app.rebuildContent()

	assert.False(t, app.NavOpen(), "Navigation starts closed")

	app.ToggleNav()
	assert.True(t, app.NavOpen())
	assert.True(t, app.navPanel.Visible())

	app.ToggleNav()
	assert.False(t, app.NavOpen())
	assert.False(t, app.navPanel.Visible())

	app.ToggleNav()
	app.CloseNav()
	assert.False(t, app.NavOpen(), "CloseNav forces the panel shut")
}

// TestNav_NoPanelIsNoOp: toggling before the window exists must not panic.
func TestNav_NoPanelIsNoOp(t *testing.T) {
	app := setupTestApp(t)

	app.ToggleNav()
	assert.False(t, app.NavOpen())
}

// -----------------------------------------------------------------------------
// Recipient Resolution Tests
// -----------------------------------------------------------------------------

func TestRecipient(t *testing.T) {
	app := setupTestApp(t)

	assert.Equal(t, config.DefaultRecipient, app.Recipient(), "Unset target falls back to default")

	app.Preferences.SetString(config.PrefContactTarget, "mailto:me@example.org?x=1")
	assert.Equal(t, "me@example.org", app.Recipient())

	app.Preferences.SetString(config.PrefContactTarget, "https://example.org")
	assert.Equal(t, config.DefaultRecipient, app.Recipient(), "Non-mailto target falls back to default")
}
