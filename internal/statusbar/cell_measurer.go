package statusbar

import "github.com/mattn/go-runewidth"

// DefaultCellWidth approximates one terminal cell in points
const DefaultCellWidth = 7.0

// CellMeasurer measures text by terminal cell count. It backs the headless
// preview, where there is no font to measure with.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// NewCellMeasurer creates a measurer with the default cell size
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{CellWidth: DefaultCellWidth, CellHeight: 16}
}

// Measure returns the cell width of text, bounded by hintWidth
func (m *CellMeasurer) Measure(text string, hintWidth float64) Size {
	width := float64(runewidth.StringWidth(text)) * m.CellWidth
	if hintWidth > 0 && width > hintWidth {
		width = hintWidth
	}
	return Size{Width: width, Height: m.CellHeight}
}
