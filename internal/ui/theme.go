package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariant pins the default theme to one variant so the stored
// light/dark preference wins over the OS setting.
type forcedVariant struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

func newForcedVariant(variant fyne.ThemeVariant) fyne.Theme {
	return &forcedVariant{base: theme.DefaultTheme(), variant: variant}
}

func (t *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *forcedVariant) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *forcedVariant) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *forcedVariant) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
