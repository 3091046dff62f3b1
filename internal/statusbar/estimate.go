package statusbar

import "github.com/ytget/clockbar/internal/model"

// Width contributions, in points
const (
	BaseWidth       = 55
	DayWidth        = 12
	TwelveHourWidth = 20
	SecondsWidth    = 15
	DateWidth       = 20
)

// BufferWidth is added to every measured header
const BufferWidth = 9.5

// EstimateBaselineWidth returns the flag-only width of one segment, used
// before any specific clock is known
func EstimateBaselineWidth(opts model.DisplayOptions) float64 {
	width := BaseWidth

	if opts.ShowDay {
		width += DayWidth
	}
	if opts.TwelveHour {
		width += TwelveHourWidth
	}
	if opts.ShowSeconds {
		width += SecondsWidth
	}
	if opts.ShowDate {
		width += DateWidth
	}

	return float64(width)
}

// EstimateWidth returns the estimated width of one clock. The 12-hour and
// seconds terms follow the clock's own format; day and date follow opts.
func EstimateWidth(opts model.DisplayOptions, entry model.TimezoneEntry) float64 {
	width := BaseWidth
	format := entry.ResolvedFormat(opts)

	if opts.ShowDay {
		width += DayWidth
	}
	if format.IsTwelveHour() {
		width += TwelveHourWidth
	}
	// Slight buffer for headers like "Mon 9:27:58 AM"
	if format.ShowsSeconds() {
		width += SecondsWidth
	}
	if opts.ShowDate {
		width += DateWidth
	}

	return float64(width)
}
