package model

// TimeFormat represents how a clock renders its time
type TimeFormat string

const (
	// FormatGlobal defers to the global 12-hour and seconds preferences
	FormatGlobal TimeFormat = "global"

	// FormatTwelveHour renders 3:04 PM
	FormatTwelveHour TimeFormat = "12h"

	// FormatTwentyFourHour renders 15:04
	FormatTwentyFourHour TimeFormat = "24h"

	// FormatTwelveHourWithSeconds renders 3:04:05 PM
	FormatTwelveHourWithSeconds TimeFormat = "12h-seconds"

	// FormatTwentyFourHourWithSeconds renders 15:04:05
	FormatTwentyFourHourWithSeconds TimeFormat = "24h-seconds"
)

// String returns the string representation of TimeFormat
func (tf TimeFormat) String() string {
	return string(tf)
}

// IsValid returns true if the format is one of the known values
func (tf TimeFormat) IsValid() bool {
	switch tf {
	case FormatGlobal, FormatTwelveHour, FormatTwentyFourHour,
		FormatTwelveHourWithSeconds, FormatTwentyFourHourWithSeconds:
		return true
	}
	return false
}

// IsTwelveHour returns true for the 12-hour formats. FormatGlobal is never
// twelve-hour on its own; resolve it first.
func (tf TimeFormat) IsTwelveHour() bool {
	return tf == FormatTwelveHour || tf == FormatTwelveHourWithSeconds
}

// ShowsSeconds returns true for the formats that include seconds
func (tf TimeFormat) ShowsSeconds() bool {
	return tf == FormatTwelveHourWithSeconds || tf == FormatTwentyFourHourWithSeconds
}

// Resolve maps FormatGlobal onto a concrete format using the global flags.
// Concrete formats are returned unchanged.
func (tf TimeFormat) Resolve(opts DisplayOptions) TimeFormat {
	if tf != FormatGlobal && tf.IsValid() {
		return tf
	}

	switch {
	case opts.TwelveHour && opts.ShowSeconds:
		return FormatTwelveHourWithSeconds
	case opts.TwelveHour:
		return FormatTwelveHour
	case opts.ShowSeconds:
		return FormatTwentyFourHourWithSeconds
	default:
		return FormatTwentyFourHour
	}
}

// Layout returns the Go time layout for a concrete format
func (tf TimeFormat) Layout() string {
	switch tf {
	case FormatTwelveHour:
		return "3:04 PM"
	case FormatTwelveHourWithSeconds:
		return "3:04:05 PM"
	case FormatTwentyFourHourWithSeconds:
		return "15:04:05"
	default:
		return "15:04"
	}
}

// TimeFormatOptions lists the formats a user can pin to a clock
func TimeFormatOptions() []TimeFormat {
	return []TimeFormat{
		FormatGlobal,
		FormatTwelveHour,
		FormatTwentyFourHour,
		FormatTwelveHourWithSeconds,
		FormatTwentyFourHourWithSeconds,
	}
}
