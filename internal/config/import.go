package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/model"
)

// ImportedTimezone is one clock in an import file
type ImportedTimezone struct {
	Timezone  string `koanf:"timezone"`
	Label     string `koanf:"label"`
	Format    string `koanf:"format"`
	Favourite *bool  `koanf:"favourite"` // defaults to true
}

// ImportFile is the layout of a YAML import file:
//
//	timezones:
//	  - timezone: Europe/Lisbon
//	    label: Lisbon
//	    format: 24h
type ImportFile struct {
	Timezones []ImportedTimezone `koanf:"timezones"`
}

// LoadImportFile reads and validates clocks from a YAML file
func LoadImportFile(path string) ([]*model.TimezoneEntry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var f ImportFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	entries := make([]*model.TimezoneEntry, 0, len(f.Timezones))
	for i, tz := range f.Timezones {
		entry, err := tz.toEntry()
		if err != nil {
			return nil, fmt.Errorf("timezone %d in %s: %w", i+1, path, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (tz ImportedTimezone) toEntry() (*model.TimezoneEntry, error) {
	if tz.Timezone == "" {
		return nil, model.ErrMissingTimezone
	}
	if _, err := clock.LoadLocation(tz.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz.Timezone, err)
	}

	format := model.FormatGlobal
	if tz.Format != "" {
		format = model.TimeFormat(tz.Format)
		if !format.IsValid() {
			return nil, fmt.Errorf("unknown time format %q", tz.Format)
		}
	}

	favourite := true
	if tz.Favourite != nil {
		favourite = *tz.Favourite
	}

	return model.NewTimezoneEntry(tz.Timezone, tz.Label, format, favourite), nil
}

// ImportTimezones appends every clock from a YAML file and returns how many
// were added. Nothing is stored when any clock is invalid.
func (s *Settings) ImportTimezones(path string) (int, error) {
	entries, err := LoadImportFile(path)
	if err != nil {
		return 0, err
	}

	records := s.Timezones()
	for _, entry := range entries {
		record, err := entry.Encode()
		if err != nil {
			return 0, err
		}
		records = append(records, record)
	}

	s.SetTimezones(records)
	return len(entries), nil
}
