package presentation

import (
	"image/color"

	"photoview/core/grid"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var _ fyne.Theme = (*photoTheme)(nil)

var (
	navyColor      = color.NRGBA{R: 0x00, G: 0x33, B: 0x66, A: 0xff}
	navyLightColor = color.NRGBA{R: 0x0a, G: 0x44, B: 0x80, A: 0xff}
	gridLineColor  = color.NRGBA{R: 0x33, G: 0x5c, B: 0x85, A: 0xff}
)

// photoTheme is a dark blue palette with the identifier accent as primary.
type photoTheme struct{}

// NewTheme returns the application theme.
func NewTheme() fyne.Theme {
	return &photoTheme{}
}

func (t *photoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameHeaderBackground:
		return navyColor
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return navyLightColor
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return grid.IDColor
	case theme.ColorNameSeparator:
		return gridLineColor
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *photoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *photoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *photoTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
