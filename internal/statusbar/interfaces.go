package statusbar

import "github.com/ytget/clockbar/internal/model"

// Size is a measured text extent
type Size struct {
	Width  float64
	Height float64
}

// Measurer measures rendered text. hintWidth is the layout constraint: the
// returned width never exceeds it when it is positive. Identical inputs must
// give identical results.
type Measurer interface {
	Measure(text string, hintWidth float64) Size
}

// Formatter produces the current header text for a clock
type Formatter interface {
	Header(entry model.TimezoneEntry, opts model.DisplayOptions) string
}

// MeasurerFunc adapts a function to Measurer
type MeasurerFunc func(text string, hintWidth float64) Size

// Measure calls f
func (f MeasurerFunc) Measure(text string, hintWidth float64) Size {
	return f(text, hintWidth)
}

// FormatterFunc adapts a function to Formatter
type FormatterFunc func(entry model.TimezoneEntry, opts model.DisplayOptions) string

// Header calls f
func (f FormatterFunc) Header(entry model.TimezoneEntry, opts model.DisplayOptions) string {
	return f(entry, opts)
}
