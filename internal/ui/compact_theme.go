package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/clockbar/internal/config"
)

// ClockTheme is a compact theme with reduced padding that can pin the
// light or dark variant regardless of the OS setting
type ClockTheme struct {
	preset config.ThemePreset
}

// NewClockTheme creates a theme for the given preset
func NewClockTheme(preset config.ThemePreset) fyne.Theme {
	return &ClockTheme{preset: preset}
}

// variant applies the preset to the variant requested by Fyne
func (t *ClockTheme) variant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.preset {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	default:
		return requested
	}
}

// Color returns theme colors
func (t *ClockTheme) Color(name fyne.ThemeColorName, requested fyne.ThemeVariant) color.Color {
	variant := t.variant(requested)

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ClockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ClockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ClockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	}

	return theme.DefaultTheme().Size(name)
}
