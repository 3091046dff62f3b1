package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/clockbar/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTimezones_Empty(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if len(settings.Timezones()) != 0 {
		t.Error("Expected no timezones in a fresh store")
	}
	if settings.RemoveLastTimezone() {
		t.Error("RemoveLastTimezone should report false on an empty store")
	}
}

func TestAddAndRemoveTimezone(t *testing.T) {
	settings := NewSettings(test.NewApp())

	first := model.NewTimezoneEntry("Europe/Lisbon", "Lisbon", model.FormatGlobal, true)
	second := model.NewTimezoneEntry("Asia/Tokyo", "", model.FormatTwelveHour, false)
	if err := settings.AddTimezone(first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := settings.AddTimezone(second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	records := settings.Timezones()
	if len(records) != 2 {
		t.Fatalf("Expected 2 timezones, got %d", len(records))
	}
	decoded, err := model.DecodeRecord(records[1])
	if err != nil {
		t.Fatalf("Expected stored record to decode, got %v", err)
	}
	if decoded.ID != second.ID {
		t.Errorf("Expected last record to be %s, got %s", second.ID, decoded.ID)
	}

	if !settings.RemoveLastTimezone() {
		t.Error("RemoveLastTimezone should report true")
	}
	records = settings.Timezones()
	if len(records) != 1 {
		t.Fatalf("Expected 1 timezone after removal, got %d", len(records))
	}
}

func TestAddTimezone_RejectsEmpty(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if err := settings.AddTimezone(nil); err == nil {
		t.Error("Expected error for nil entry")
	}
	if err := settings.AddTimezone(&model.TimezoneEntry{}); err == nil {
		t.Error("Expected error for entry without timezone")
	}
}

func TestMenubarTimezones(t *testing.T) {
	settings := NewSettings(test.NewApp())

	favourite := model.NewTimezoneEntry("UTC", "A", model.FormatGlobal, true)
	other := model.NewTimezoneEntry("UTC", "B", model.FormatGlobal, false)
	favRecord, _ := favourite.Encode()
	otherRecord, _ := other.Encode()
	settings.SetTimezones([]model.Record{favRecord, model.Record("junk"), otherRecord, favRecord})

	menubar := settings.MenubarTimezones()
	if len(menubar) != 2 {
		t.Fatalf("Expected 2 favourite records, got %d", len(menubar))
	}
	for _, record := range menubar {
		if string(record) != string(favRecord) {
			t.Errorf("Unexpected record in menubar list: %s", record)
		}
	}
}

func TestDisplayOptions_Defaults(t *testing.T) {
	settings := NewSettings(test.NewApp())
	opts := settings.DisplayOptions()

	expected := model.DisplayOptions{CompactMode: DefaultCompactMode}
	if opts != expected {
		t.Errorf("Expected default options %+v, got %+v", expected, opts)
	}
}

func TestDayAndDateAreCached(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Written behind the facade's back: the cache must not see it yet
	app.Preferences().SetBool(string(OptionShowDay), true)
	app.Preferences().SetBool(string(OptionShowDate), true)
	if settings.ShowDayInMenubar() || settings.ShowDateInMenubar() {
		t.Fatal("Cached flags should not change without explicit invalidation")
	}

	settings.UpdateDayPreference()
	if !settings.ShowDayInMenubar() {
		t.Error("UpdateDayPreference should refresh the day flag")
	}
	if settings.ShowDateInMenubar() {
		t.Error("UpdateDayPreference should not touch the date flag")
	}

	settings.UpdateDatePreference()
	if !settings.ShowDateInMenubar() {
		t.Error("UpdateDatePreference should refresh the date flag")
	}
}

func TestDaySetterInvalidatesCache(t *testing.T) {
	settings := NewSettings(test.NewApp())

	settings.SetShowDayInMenubar(true)
	settings.SetShowDateInMenubar(true)

	opts := settings.DisplayOptions()
	if !opts.ShowDay || !opts.ShowDate {
		t.Errorf("Expected day and date enabled, got %+v", opts)
	}
}

func TestSetDisplay(t *testing.T) {
	settings := NewSettings(test.NewApp())

	settings.SetDisplay(OptionTwelveHour, true)
	settings.SetDisplay(OptionShowSeconds, true)
	settings.SetDisplay(OptionCompactMode, false)
	settings.SetDisplay(OptionShowPlace, true)

	opts := settings.DisplayOptions()
	if !opts.TwelveHour || !opts.ShowSeconds || opts.CompactMode || !opts.ShowPlace {
		t.Errorf("Unexpected options %+v", opts)
	}
}

func TestOnChange(t *testing.T) {
	settings := NewSettings(test.NewApp())

	calls := 0
	settings.OnChange(func() { calls++ })

	settings.SetDisplay(OptionShowSeconds, true)
	settings.SetShowDayInMenubar(true)
	_ = settings.AddTimezone(model.NewTimezoneEntry("UTC", "", model.FormatGlobal, true))

	if calls != 3 {
		t.Errorf("Expected 3 change notifications, got %d", calls)
	}
}

func TestTheme(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetTheme() != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, settings.GetTheme())
	}

	settings.SetTheme(ThemeDark)
	if settings.GetTheme() != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, settings.GetTheme())
	}

	settings.SetTheme(ThemePreset("neon"))
	if settings.GetTheme() != DefaultTheme {
		t.Errorf("Unknown theme should fall back to %s, got %s", DefaultTheme, settings.GetTheme())
	}

	if len(settings.GetThemeOptions()) != 3 {
		t.Errorf("Expected 3 theme options, got %d", len(settings.GetThemeOptions()))
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestBatchNotifiesOnce(t *testing.T) {
	settings := NewSettings(test.NewApp())

	calls := 0
	settings.OnChange(func() { calls++ })

	settings.Batch(func() {
		settings.SetDisplay(OptionTwelveHour, true)
		settings.SetShowDateInMenubar(true)
		settings.Batch(func() {
			settings.SetTheme(ThemeLight)
		})
		if calls != 0 {
			t.Errorf("Expected no notification inside a batch, got %d", calls)
		}
	})

	if calls != 1 {
		t.Errorf("Expected 1 change notification, got %d", calls)
	}
	if !settings.ShowDateInMenubar() || settings.GetTheme() != ThemeLight {
		t.Error("Expected batched changes to be stored")
	}

	settings.Batch(func() {})
	if calls != 1 {
		t.Errorf("Empty batch should not notify, got %d notifications", calls)
	}

	settings.SetDisplay(OptionShowSeconds, true)
	if calls != 2 {
		t.Errorf("Expected notifications to resume after a batch, got %d", calls)
	}
}

func TestDayStyle(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetDayStyle() != model.DayRelative {
		t.Errorf("Expected default day style %s, got %s", model.DayRelative, settings.GetDayStyle())
	}

	settings.SetDayStyle(model.DayActualDate)
	if settings.GetDayStyle() != model.DayActualDate {
		t.Errorf("Expected day style %s, got %s", model.DayActualDate, settings.GetDayStyle())
	}

	settings.SetDayStyle(model.DayStyle("fortnight"))
	if settings.GetDayStyle() != DefaultDayStyle {
		t.Errorf("Unknown day style should fall back to %s, got %s", DefaultDayStyle, settings.GetDayStyle())
	}
}

func TestAppDisplay(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetAppDisplay() != DisplayTrayAndStrip {
		t.Errorf("Expected default display mode %s, got %s", DisplayTrayAndStrip, settings.GetAppDisplay())
	}

	settings.SetAppDisplay(DisplayTrayOnly)
	if settings.GetAppDisplay() != DisplayTrayOnly {
		t.Errorf("Expected display mode %s, got %s", DisplayTrayOnly, settings.GetAppDisplay())
	}

	settings.SetAppDisplay(AppDisplayMode("dock"))
	if settings.GetAppDisplay() != DefaultAppDisplay {
		t.Errorf("Unknown display mode should fall back to %s, got %s", DefaultAppDisplay, settings.GetAppDisplay())
	}
}
