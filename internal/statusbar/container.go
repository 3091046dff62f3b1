package statusbar

import (
	"math"
	"sync"

	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/model"
)

// ContainerHeight is the fixed height of the menu-bar strip
const ContainerHeight = 30

// Entry is one laid-out clock segment
type Entry struct {
	Timezone model.TimezoneEntry
	Width    float64
	Offset   float64
	Text     string
}

// Container lays clock segments out left to right.
//
// Offsets are assigned once, when a segment is appended. Refresh re-measures
// every segment and corrects the total width but leaves offsets alone, so a
// segment whose width changed can overlap or gap its neighbour until the
// container is rebuilt.
type Container struct {
	mu sync.Mutex

	measurer  Measurer
	formatter Formatter

	entries   []*Entry
	width     float64
	previousX float64
	skipped   int
}

// Build decodes records and lays out one segment per decodable record.
// Malformed records are logged and counted, never fatal.
func Build(records []model.Record, opts model.DisplayOptions, measurer Measurer, formatter Formatter) *Container {
	c := &Container{
		measurer:  measurer,
		formatter: formatter,
	}

	results := model.DecodeRecords(records)
	baseline := EstimateBaselineWidth(opts)

	approximate := 0.0
	for _, result := range results {
		if !result.OK() {
			logger.Warn("Skipping timezone record", "error", result.Err)
			c.skipped++
			approximate += baseline
			continue
		}
		approximate += EstimateWidth(opts, result.Entry) + BufferWidth
	}

	// Caps runaway widths for many wide clocks; very long lists may clip.
	c.width = math.Min(approximate, float64(len(records))*baseline)

	for _, result := range results {
		if result.OK() {
			c.addEntryLocked(result.Entry, opts)
		}
	}

	logger.Debug("Built status container", "entries", len(c.entries), "skipped", c.skipped, "width", c.width)
	return c
}

// AddEntry appends a segment at the current cursor and advances it.
// Existing segments are not moved.
func (c *Container) AddEntry(entry model.TimezoneEntry, opts model.DisplayOptions) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.addEntryLocked(entry, opts)
}

func (c *Container) addEntryLocked(entry model.TimezoneEntry, opts model.DisplayOptions) *Entry {
	header := c.formatter.Header(entry, opts)

	e := &Entry{
		Timezone: entry,
		Width:    c.bestWidth(header, entry, opts),
		Offset:   c.previousX,
		Text:     header,
	}
	c.entries = append(c.entries, e)
	c.previousX += e.Width
	return e
}

// bestWidth measures header against the clock's estimate and adds the
// buffer, truncated to whole points
func (c *Container) bestWidth(header string, entry model.TimezoneEntry, opts model.DisplayOptions) float64 {
	size := c.measurer.Measure(header, EstimateWidth(opts, entry))
	return math.Floor(size.Width + BufferWidth)
}

// Refresh updates every segment's text and width for the current time and
// resizes the container when the total changed. It reports whether the
// container width changed. An empty container is a no-op.
func (c *Container) Refresh(opts model.DisplayOptions) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		logger.Debug("Refresh called on empty status container")
		return false
	}

	newWidth := 0.0
	for _, e := range c.entries {
		header := c.formatter.Header(e.Timezone, opts)
		e.Width = c.bestWidth(header, e.Timezone, opts)
		e.Text = header
		newWidth += e.Width
	}

	if newWidth == c.width {
		return false
	}

	logger.Debug("Correcting status container width", "from", c.width, "to", newWidth)
	c.width = newWidth
	return true
}

// Entries returns a copy of the laid-out segments in order
func (c *Container) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, *e)
	}
	return entries
}

// Width returns the current container width
func (c *Container) Width() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Height returns the container height
func (c *Container) Height() float64 {
	return ContainerHeight
}

// Len returns the number of segments
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Skipped returns how many records failed to decode during Build
func (c *Container) Skipped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.skipped
}
