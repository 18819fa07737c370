package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MovieTheme tightens list spacing and gives titles a warmer accent
type MovieTheme struct{}

// NewMovieTheme creates the app theme
func NewMovieTheme() fyne.Theme {
	return &MovieTheme{}
}

// Color returns theme colors
func (t *MovieTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNameSeparator:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		}
		return color.NRGBA{R: 224, G: 224, B: 224, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *MovieTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MovieTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; rows use slightly smaller body text
func (t *MovieTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	}

	return theme.DefaultTheme().Size(name)
}
