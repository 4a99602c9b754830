package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// UI constants
const (
	FontSize     float32 = 20.0 // Keycap label
	FontSizeMods float32 = 14.0 // Modifier bank label

	// Dimensions
	KeycapMinWidth  = 48
	KeycapHeight    = 44
	ModifierWidth   = 72
	ModifierHeight  = 28
	KeycapSpacing   = 6
	CornerRadius    = 8.0
	WindowWidth     = 420
	WindowHeight    = 130
	DimmedTextAlpha = 0x80
)

var (
	// BackgroundColor is the overlay background.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xe6}
	// KeycapColor fills every keycap.
	KeycapColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x38, A: 0xff}
	// TextColor is the label color of an active keycap.
	TextColor = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

// CustomTheme keeps the default theme but paints the window in the overlay
// colors.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the overlay colors and defers everything else to the
// default dark variant.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNameForeground:
		return TextColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
