package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/tartampluch/go-folio/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	// Initialize the custom widget using Fyne's test infrastructure.
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Digit_Five", '5', true},
		{"Letter_a", 'a', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear previous content
			entry.SetText("")

			// Simulate typing
			test.Type(entry, string(tt.input))

			got := entry.Text
			if tt.accepted {
				if got != string(tt.input) {
					t.Errorf("expected input %q to be accepted, got text %q", tt.input, got)
				}
			} else {
				if got != "" {
					t.Errorf("expected input %q to be rejected, got text %q", tt.input, got)
				}
			}
		})
	}
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()

	// Verify it requests the Number keyboard on mobile devices
	if got := entry.Keyboard(); got != mobile.NumberKeyboard {
		t.Errorf("expected keyboard type %v, got %v", mobile.NumberKeyboard, got)
	}
}

func TestNumericalEntry_IntHelpers(t *testing.T) {
	entry := ui.NewNumericalEntry()

	if got := entry.Int(2020); got != 2020 {
		t.Errorf("empty entry should fall back, got %d", got)
	}

	entry.SetInt(2024)
	if entry.Text != "2024" {
		t.Errorf("SetInt should write decimal text, got %q", entry.Text)
	}
	if got := entry.Int(0); got != 2024 {
		t.Errorf("Int should parse the text, got %d", got)
	}

	// Direct setting bypasses TypedRune; parsing falls back.
	entry.SetText("abc")
	if got := entry.Int(1999); got != 1999 {
		t.Errorf("non-numeric text should fall back, got %d", got)
	}
}
