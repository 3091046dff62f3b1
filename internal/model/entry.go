package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TimezoneEntry is one configured clock
type TimezoneEntry struct {
	ID         string     `json:"id"`
	TimezoneID string     `json:"timezone"`        // IANA name, e.g. "Europe/Lisbon"
	Label      string     `json:"label,omitempty"` // custom label shown above the time
	Format     TimeFormat `json:"format,omitempty"`
	Favourite  bool       `json:"favourite"` // favourites are shown in the menu bar
}

// Record is the opaque persisted form of a TimezoneEntry
type Record []byte

// ErrMissingTimezone is returned when a record has no timezone identifier
var ErrMissingTimezone = errors.New("record has no timezone identifier")

// DecodeError reports a record that could not be turned into an entry
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewTimezoneEntry creates an entry with a fresh ID
func NewTimezoneEntry(timezoneID, label string, format TimeFormat, favourite bool) *TimezoneEntry {
	if !format.IsValid() {
		format = FormatGlobal
	}
	return &TimezoneEntry{
		ID:         uuid.NewString(),
		TimezoneID: strings.TrimSpace(timezoneID),
		Label:      strings.TrimSpace(label),
		Format:     format,
		Favourite:  favourite,
	}
}

// GetDisplayLabel returns the custom label, or the city part of the timezone
// identifier ("America/New_York" -> "New York")
func (e *TimezoneEntry) GetDisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}

	name := e.TimezoneID
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}

// ResolvedFormat returns the concrete format this entry renders with
func (e *TimezoneEntry) ResolvedFormat(opts DisplayOptions) TimeFormat {
	return e.Format.Resolve(opts)
}

// Encode serializes the entry into a Record
func (e *TimezoneEntry) Encode() (Record, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode timezone %s: %w", e.TimezoneID, err)
	}
	return Record(data), nil
}

// DecodeRecord parses a Record. Malformed input yields an error, never a panic.
func DecodeRecord(record Record) (TimezoneEntry, error) {
	var entry TimezoneEntry
	if len(record) == 0 {
		return entry, errors.New("empty record")
	}
	if err := json.Unmarshal(record, &entry); err != nil {
		return TimezoneEntry{}, err
	}

	entry.TimezoneID = strings.TrimSpace(entry.TimezoneID)
	if entry.TimezoneID == "" {
		return TimezoneEntry{}, ErrMissingTimezone
	}
	if entry.Format == "" {
		entry.Format = FormatGlobal
	}
	if !entry.Format.IsValid() {
		return TimezoneEntry{}, fmt.Errorf("unknown time format %q", entry.Format)
	}
	return entry, nil
}

// DecodeResult holds the outcome of decoding one record
type DecodeResult struct {
	Entry TimezoneEntry
	Err   *DecodeError
}

// OK reports whether the record decoded
func (r DecodeResult) OK() bool {
	return r.Err == nil
}

// DecodeRecords decodes every record, keeping one result per input in order
func DecodeRecords(records []Record) []DecodeResult {
	results := make([]DecodeResult, 0, len(records))
	for i, record := range records {
		entry, err := DecodeRecord(record)
		if err != nil {
			results = append(results, DecodeResult{Err: &DecodeError{Index: i, Err: err}})
			continue
		}
		results = append(results, DecodeResult{Entry: entry})
	}
	return results
}
