package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CinemaTheme is a dark-first theme with the app's red accent and roomier
// touch targets.
type CinemaTheme struct{}

// NewCinemaTheme creates the app theme
func NewCinemaTheme() fyne.Theme {
	return &CinemaTheme{}
}

// Color returns theme colors
func (t *CinemaTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 229, G: 9, B: 20, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 82, B: 82, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 14, G: 14, B: 16, A: 255}
		}
		return color.RGBA{R: 246, G: 244, B: 242, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 240, A: 255}
		}
		return color.RGBA{R: 28, G: 28, B: 30, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CinemaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CinemaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CinemaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
