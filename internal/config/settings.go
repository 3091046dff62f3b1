package config

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/clockbar/internal/model"
)

// DisplayOption names a boolean menu-bar preference
type DisplayOption string

const (
	OptionShowDay     DisplayOption = "show_day_in_menubar"
	OptionShowDate    DisplayOption = "show_date_in_menubar"
	OptionTwelveHour  DisplayOption = "twelve_hour_format"
	OptionShowSeconds DisplayOption = "show_seconds"
	OptionCompactMode DisplayOption = "menubar_compact_mode"
	OptionShowPlace   DisplayOption = "show_place_in_menubar"
)

// ThemePreset selects the application theme variant
type ThemePreset string

const (
	ThemeLight  ThemePreset = "light"
	ThemeDark   ThemePreset = "dark"
	ThemeSystem ThemePreset = "system"
)

// AppDisplayMode selects whether the clock strip window is shown next to
// the tray menu
type AppDisplayMode string

const (
	DisplayTrayOnly     AppDisplayMode = "tray"
	DisplayTrayAndStrip AppDisplayMode = "tray_and_strip"
)

// Settings keys for Fyne preferences
const (
	KeyTimezones  = "timezones"
	KeyTheme      = "app_theme"
	KeyLanguage   = "app_language"
	KeyDayStyle   = "relative_day_style"
	KeyAppDisplay = "app_display_mode"
)

// Default values
const (
	DefaultTheme       = ThemeSystem
	DefaultLanguage    = "system"
	DefaultCompactMode = true
	DefaultDayStyle    = model.DayRelative
	DefaultAppDisplay  = DisplayTrayAndStrip
)

// Settings manages application configuration. The day and date flags are
// read every second, so they are cached and refreshed only through
// UpdateDayPreference and UpdateDatePreference.
type Settings struct {
	app fyne.App

	mu                sync.RWMutex
	showDayInMenubar  bool
	showDateInMenubar bool
	changeListeners   []func()

	// Notifications are held while a Batch runs
	batchDepth    int
	changePending bool
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	s := &Settings{app: app}
	s.showDayInMenubar = s.ShouldDisplay(OptionShowDay)
	s.showDateInMenubar = s.ShouldDisplay(OptionShowDate)
	return s
}

// OnChange registers a listener fired after every preference change
func (s *Settings) OnChange(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changeListeners = append(s.changeListeners, listener)
}

// Batch runs update and fires change listeners once afterwards, and only
// if update changed something
func (s *Settings) Batch(update func()) {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.batchDepth--
		fire := s.batchDepth == 0 && s.changePending
		if fire {
			s.changePending = false
		}
		s.mu.Unlock()

		if fire {
			s.fireChange()
		}
	}()

	update()
}

func (s *Settings) notifyChange() {
	s.mu.Lock()
	if s.batchDepth > 0 {
		s.changePending = true
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.fireChange()
}

func (s *Settings) fireChange() {
	s.mu.RLock()
	listeners := append([]func(){}, s.changeListeners...)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener()
	}
}

// Timezones returns every stored timezone record
func (s *Settings) Timezones() []model.Record {
	values := s.app.Preferences().StringList(KeyTimezones)
	records := make([]model.Record, 0, len(values))
	for _, value := range values {
		records = append(records, model.Record(value))
	}
	return records
}

// SetTimezones replaces the stored timezone records
func (s *Settings) SetTimezones(records []model.Record) {
	values := make([]string, 0, len(records))
	for _, record := range records {
		values = append(values, string(record))
	}
	s.app.Preferences().SetStringList(KeyTimezones, values)
	s.notifyChange()
}

// MenubarTimezones returns the records of favourite clocks, in order.
// Records that fail to decode are kept out.
func (s *Settings) MenubarTimezones() []model.Record {
	var favourites []model.Record
	for _, record := range s.Timezones() {
		entry, err := model.DecodeRecord(record)
		if err == nil && entry.Favourite {
			favourites = append(favourites, record)
		}
	}
	return favourites
}

// AddTimezone appends a timezone record
func (s *Settings) AddTimezone(entry *model.TimezoneEntry) error {
	if entry == nil || entry.TimezoneID == "" {
		return fmt.Errorf("add timezone: %w", model.ErrMissingTimezone)
	}
	record, err := entry.Encode()
	if err != nil {
		return err
	}

	s.SetTimezones(append(s.Timezones(), record))
	return nil
}

// RemoveLastTimezone drops the most recently added record, if any
func (s *Settings) RemoveLastTimezone() bool {
	records := s.Timezones()
	if len(records) == 0 {
		return false
	}
	s.SetTimezones(records[:len(records)-1])
	return true
}

// ShouldDisplay reads a display option straight from preferences
func (s *Settings) ShouldDisplay(option DisplayOption) bool {
	fallback := false
	if option == OptionCompactMode {
		fallback = DefaultCompactMode
	}
	return s.app.Preferences().BoolWithFallback(string(option), fallback)
}

// SetDisplay stores a display option. Day and date caches are refreshed by
// their own setters, not here.
func (s *Settings) SetDisplay(option DisplayOption, enabled bool) {
	s.app.Preferences().SetBool(string(option), enabled)
	s.notifyChange()
}

// SetShowDayInMenubar stores the day option and refreshes its cache
func (s *Settings) SetShowDayInMenubar(enabled bool) {
	s.app.Preferences().SetBool(string(OptionShowDay), enabled)
	s.UpdateDayPreference()
	s.notifyChange()
}

// SetShowDateInMenubar stores the date option and refreshes its cache
func (s *Settings) SetShowDateInMenubar(enabled bool) {
	s.app.Preferences().SetBool(string(OptionShowDate), enabled)
	s.UpdateDatePreference()
	s.notifyChange()
}

// UpdateDayPreference re-reads the cached day flag
func (s *Settings) UpdateDayPreference() {
	value := s.ShouldDisplay(OptionShowDay)
	s.mu.Lock()
	s.showDayInMenubar = value
	s.mu.Unlock()
}

// UpdateDatePreference re-reads the cached date flag
func (s *Settings) UpdateDatePreference() {
	value := s.ShouldDisplay(OptionShowDate)
	s.mu.Lock()
	s.showDateInMenubar = value
	s.mu.Unlock()
}

// ShowDayInMenubar returns the cached day flag
func (s *Settings) ShowDayInMenubar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showDayInMenubar
}

// ShowDateInMenubar returns the cached date flag
func (s *Settings) ShowDateInMenubar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showDateInMenubar
}

// DisplayOptions returns a snapshot for the layout engine
func (s *Settings) DisplayOptions() model.DisplayOptions {
	return model.DisplayOptions{
		ShowDay:     s.ShowDayInMenubar(),
		ShowDate:    s.ShowDateInMenubar(),
		TwelveHour:  s.ShouldDisplay(OptionTwelveHour),
		ShowSeconds: s.ShouldDisplay(OptionShowSeconds),
		CompactMode: s.ShouldDisplay(OptionCompactMode),
		ShowPlace:   s.ShouldDisplay(OptionShowPlace),
	}
}

// GetTheme returns the configured theme preset
func (s *Settings) GetTheme() ThemePreset {
	preset := ThemePreset(s.app.Preferences().String(KeyTheme))
	switch preset {
	case ThemeLight, ThemeDark, ThemeSystem:
		return preset
	}
	return DefaultTheme
}

// SetTheme sets the theme preset; unknown values fall back to the default
func (s *Settings) SetTheme(preset ThemePreset) {
	switch preset {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		preset = DefaultTheme
	}
	s.app.Preferences().SetString(KeyTheme, string(preset))
	s.notifyChange()
}

// GetThemeOptions returns available theme presets
func (s *Settings) GetThemeOptions() []ThemePreset {
	return []ThemePreset{ThemeLight, ThemeDark, ThemeSystem}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
	s.notifyChange()
}

// GetDayStyle returns how tray clocks describe their day
func (s *Settings) GetDayStyle() model.DayStyle {
	style := model.DayStyle(s.app.Preferences().String(KeyDayStyle))
	if !style.IsValid() {
		return DefaultDayStyle
	}
	return style
}

// SetDayStyle sets the day style; unknown values fall back to the default
func (s *Settings) SetDayStyle(style model.DayStyle) {
	if !style.IsValid() {
		style = DefaultDayStyle
	}
	s.app.Preferences().SetString(KeyDayStyle, string(style))
	s.notifyChange()
}

// GetAppDisplay returns whether the strip window is shown
func (s *Settings) GetAppDisplay() AppDisplayMode {
	mode := AppDisplayMode(s.app.Preferences().String(KeyAppDisplay))
	switch mode {
	case DisplayTrayOnly, DisplayTrayAndStrip:
		return mode
	}
	return DefaultAppDisplay
}

// SetAppDisplay sets the display mode; unknown values fall back to the default
func (s *Settings) SetAppDisplay(mode AppDisplayMode) {
	switch mode {
	case DisplayTrayOnly, DisplayTrayAndStrip:
	default:
		mode = DefaultAppDisplay
	}
	s.app.Preferences().SetString(KeyAppDisplay, string(mode))
	s.notifyChange()
}
