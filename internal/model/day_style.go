package model

// DayStyle selects how a clock's day is described next to its time
type DayStyle string

const (
	// DayRelative shows Today, Tomorrow or Yesterday
	DayRelative DayStyle = "relative"

	// DayActual shows the weekday name
	DayActual DayStyle = "actual-day"

	// DayActualDate shows the weekday with the date
	DayActualDate DayStyle = "actual-date"
)

// IsValid returns true if the style is one of the known values
func (ds DayStyle) IsValid() bool {
	switch ds {
	case DayRelative, DayActual, DayActualDate:
		return true
	}
	return false
}

// DayStyleOptions lists the styles in display order
func DayStyleOptions() []DayStyle {
	return []DayStyle{DayRelative, DayActual, DayActualDate}
}
