package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestAccentTheme(t *testing.T) {
	th := NewAccentTheme()

	primary := th.Color(theme.ColorNamePrimary, theme.VariantLight)
	if primary != (color.RGBA{R: 254, G: 44, B: 85, A: 255}) {
		t.Errorf("Unexpected primary color: %v", primary)
	}
	if th.Size(theme.SizeNameText) != 13 {
		t.Errorf("Unexpected text size: %v", th.Size(theme.SizeNameText))
	}
	if th.Size(theme.SizeNameScrollBar) != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Error("Other sizes should come from the default theme")
	}
}
