package clock

import (
	"strings"
	"sync"
	"time"

	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/model"
)

// Layout fragments for the optional header parts
const (
	DayLayout  = "Mon"
	DateLayout = "2 Jan"

	WeekdayLayout     = "Monday"
	WeekdayDateLayout = "Mon, 2 Jan"
)

// Formatter renders the current time of a clock for the menu bar
type Formatter struct {
	now   func() time.Time
	local *time.Location

	mu        sync.Mutex
	locations map[string]*time.Location
}

// NewFormatter creates a formatter reading the system clock
func NewFormatter() *Formatter {
	return NewFormatterWithClock(time.Now)
}

// NewFormatterWithClock creates a formatter with a custom time source
func NewFormatterWithClock(now func() time.Time) *Formatter {
	return &Formatter{
		now:       now,
		local:     time.Local,
		locations: make(map[string]*time.Location),
	}
}

// Header returns "[Mon ][19 Oct ]<time>" for the entry's timezone
func (f *Formatter) Header(entry model.TimezoneEntry, opts model.DisplayOptions) string {
	t := f.now().In(f.location(entry.TimezoneID))

	parts := make([]string, 0, 3)
	if opts.ShowDay {
		parts = append(parts, t.Format(DayLayout))
	}
	if opts.ShowDate {
		parts = append(parts, t.Format(DateLayout))
	}
	parts = append(parts, t.Format(entry.ResolvedFormat(opts).Layout()))

	return strings.Join(parts, " ")
}

// Title returns the standard-mode text: the header, prefixed by the clock's
// label when place names are enabled
func (f *Formatter) Title(entry model.TimezoneEntry, opts model.DisplayOptions) string {
	header := f.Header(entry, opts)
	if !opts.ShowPlace {
		return header
	}
	return entry.GetDisplayLabel() + " " + header
}

// JoinTitles renders every entry for standard mode, separated by two spaces
func (f *Formatter) JoinTitles(entries []model.TimezoneEntry, opts model.DisplayOptions) string {
	titles := make([]string, 0, len(entries))
	for _, entry := range entries {
		titles = append(titles, f.Title(entry, opts))
	}
	return strings.Join(titles, "  ")
}

// SetLocal sets the zone relative days are counted from
func (f *Formatter) SetLocal(loc *time.Location) {
	f.local = loc
}

// DayOffset returns how many calendar days the entry's timezone is ahead of
// the local day; negative when behind
func (f *Formatter) DayOffset(entry model.TimezoneEntry) int {
	now := f.now()
	ly, lm, ld := now.In(f.local).Date()
	ry, rm, rd := now.In(f.location(entry.TimezoneID)).Date()

	local := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	remote := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	return int(remote.Sub(local).Hours() / 24)
}

// Day describes the entry's current day in style. Relative days are named by
// relative from the day offset.
func (f *Formatter) Day(entry model.TimezoneEntry, style model.DayStyle, relative func(offset int) string) string {
	switch style {
	case model.DayActual:
		return f.now().In(f.location(entry.TimezoneID)).Format(WeekdayLayout)
	case model.DayActualDate:
		return f.now().In(f.location(entry.TimezoneID)).Format(WeekdayDateLayout)
	default:
		return relative(f.DayOffset(entry))
	}
}

// location loads and caches a timezone; unknown names fall back to UTC
func (f *Formatter) location(name string) *time.Location {
	f.mu.Lock()
	defer f.mu.Unlock()

	if loc, ok := f.locations[name]; ok {
		return loc
	}

	loc, err := LoadLocation(name)
	if err != nil {
		logger.Warn("Unknown timezone, using UTC", "timezone", name, "error", err)
		loc = time.UTC
	}
	f.locations[name] = loc
	return loc
}

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" or an empty name returns the system's local timezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
