package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clockbar/internal/statusbar"
)

// FyneMeasurer measures status bar text with the current Fyne font
type FyneMeasurer struct {
	TextSize  float32
	TextStyle fyne.TextStyle
}

// NewFyneMeasurer creates a measurer for the compact time font
func NewFyneMeasurer() *FyneMeasurer {
	return &FyneMeasurer{TextSize: CompactTimeTextSize}
}

// Measure returns the rendered size of text, constrained to hintWidth
func (m *FyneMeasurer) Measure(text string, hintWidth float64) statusbar.Size {
	size := fyne.MeasureText(text, m.TextSize, m.TextStyle)

	width := float64(size.Width)
	if hintWidth > 0 && width > hintWidth {
		width = hintWidth
	}
	return statusbar.Size{Width: width, Height: float64(size.Height)}
}
