package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/model"
)

type fakeTicker struct {
	callback func(time.Time)
	running  bool
}

func (f *fakeTicker) SetTickCallback(cb func(time.Time)) { f.callback = cb }

func (f *fakeTicker) Start(context.Context) error {
	f.running = true
	return nil
}

func (f *fakeTicker) Stop()                     { f.running = false }
func (f *fakeTicker) Running() bool             { return f.running }
func (f *fakeTicker) SetInterval(time.Duration) {}

func newTestRootUI(t *testing.T) (*RootUI, *config.Settings, *fakeTicker) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	tick := &fakeTicker{}
	return NewRootUI(w, app, settings, tick, t.TempDir()), settings, tick
}

func addClock(t *testing.T, settings *config.Settings, entry *model.TimezoneEntry) {
	t.Helper()
	if err := settings.AddTimezone(entry); err != nil {
		t.Fatalf("Failed to add timezone: %v", err)
	}
}

func TestRootUI_NoFavouritesShowsHint(t *testing.T) {
	ui, _, tick := newTestRootUI(t)

	if ui.StatusView() != nil {
		t.Error("Expected no status view without favourites")
	}
	if tick.callback == nil {
		t.Error("Expected tick callback to be registered")
	}

	label, ok := ui.window.Content().(*widget.Label)
	if !ok {
		t.Fatalf("Expected hint label, got %T", ui.window.Content())
	}
	if label.Text != ui.localization.GetText(KeyFavouriteHint) {
		t.Errorf("Expected favourite hint, got %q", label.Text)
	}
}

func TestRootUI_RebuildsOnPreferenceChange(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)

	addClock(t, settings, model.NewTimezoneEntry("UTC", "UTC", model.FormatGlobal, true))
	addClock(t, settings, model.NewTimezoneEntry("UTC", "Hidden", model.FormatGlobal, false))

	view := ui.StatusView()
	if view == nil {
		t.Fatal("Expected a status view, compact mode is the default")
	}
	if len(view.Items()) != 1 {
		t.Errorf("Expected 1 strip item, got %d", len(view.Items()))
	}
	if len(ui.trayClockItems) != 2 {
		t.Fatalf("Expected tray to list every clock, got %d", len(ui.trayClockItems))
	}
	if !ui.trayClockItems[0].Checked || ui.trayClockItems[1].Checked {
		t.Error("Expected only the favourite clock to be checked in the tray")
	}

	settings.SetDisplay(config.OptionCompactMode, false)
	if ui.StatusView() != nil {
		t.Error("Expected no status view in standard mode")
	}
	if ui.standardText == nil || ui.standardText.Text == "" {
		t.Error("Expected standard mode text")
	}
}

func TestRootUI_UpdateTimeKeepsSegments(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)
	addClock(t, settings, model.NewTimezoneEntry("UTC", "UTC", model.FormatGlobal, true))

	view := ui.StatusView()
	if view == nil {
		t.Fatal("Expected a status view")
	}
	before := view.Layout().Entries()

	ui.updateTime()

	after := view.Layout().Entries()
	if len(after) != len(before) {
		t.Fatalf("Expected %d segments, got %d", len(before), len(after))
	}
	if after[0].Offset != before[0].Offset {
		t.Errorf("Offset moved from %v to %v", before[0].Offset, after[0].Offset)
	}
	if after[0].Text == "" {
		t.Error("Expected segment text after update")
	}
}

func TestRootUI_StandardModeGrowsWithText(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)

	now := time.Date(2024, time.March, 9, 9, 59, 59, 0, time.UTC)
	ui.formatter = clock.NewFormatterWithClock(func() time.Time { return now })

	settings.SetDisplay(config.OptionCompactMode, false)
	settings.SetDisplay(config.OptionTwelveHour, true)
	settings.SetDisplay(config.OptionShowSeconds, true)
	for i := 0; i < 3; i++ {
		addClock(t, settings, model.NewTimezoneEntry("UTC", "", model.FormatGlobal, true))
	}
	if ui.standardText == nil {
		t.Fatal("Expected standard mode text")
	}
	narrow := ui.window.Canvas().Size().Width

	now = now.Add(time.Second)
	ui.updateTime()

	if ui.standardText.Text != "10:00:00 AM  10:00:00 AM  10:00:00 AM" {
		t.Fatalf("Unexpected text %q", ui.standardText.Text)
	}
	width := ui.window.Canvas().Size().Width
	if width < ui.standardText.MinSize().Width {
		t.Errorf("Window width %v clips text of width %v", width, ui.standardText.MinSize().Width)
	}
	if width <= narrow {
		t.Errorf("Expected window to grow from %v, got %v", narrow, width)
	}
}

func TestRootUI_LanguageMenuSorted(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	menus := ui.window.MainMenu().Items
	if len(menus) != 2 {
		t.Fatalf("Expected 2 menus, got %d", len(menus))
	}

	expected := []string{"English", "Português", "Русский"}
	for round := 0; round < 5; round++ {
		ui.createMenu()
		items := ui.window.MainMenu().Items[1].Items
		if len(items) != len(expected) {
			t.Fatalf("Expected %d languages, got %d", len(expected), len(items))
		}
		for i, name := range expected {
			if items[i].Label != name {
				t.Errorf("Language %d: expected %s, got %s", i, name, items[i].Label)
			}
		}
	}
}

func TestRootUI_TrayShowsDay(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)

	now := time.Date(2024, time.March, 9, 0, 46, 5, 0, time.UTC)
	ui.formatter = clock.NewFormatterWithClock(func() time.Time { return now })
	ui.formatter.SetLocal(time.FixedZone("UTC-5", -5*3600))

	addClock(t, settings, model.NewTimezoneEntry("UTC", "Server", model.FormatTwentyFourHour, true))

	expected := IconClock + " Server" + MiddleDotSeparator + "00:46" + MiddleDotSeparator + "Tomorrow"
	if got := ui.trayClockItems[0].Label; got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	settings.SetDayStyle(model.DayActualDate)
	expected = IconClock + " Server" + MiddleDotSeparator + "00:46" + MiddleDotSeparator + "Sat, 9 Mar"
	if got := ui.trayClockItems[0].Label; got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRootUI_AppDisplayHidesStrip(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)

	settings.SetAppDisplay(config.DisplayTrayOnly)
	if !ui.StripVisible() {
		t.Error("Strip must stay visible without a system tray")
	}

	ui.hasTray = true
	ui.appDisplay = ""
	ui.rebuild()
	if ui.StripVisible() {
		t.Error("Expected strip to be hidden in tray-only mode")
	}

	settings.SetAppDisplay(config.DisplayTrayAndStrip)
	if !ui.StripVisible() {
		t.Error("Expected strip to be shown again")
	}
}

func TestRootUI_RemoveLastTimezone(t *testing.T) {
	ui, settings, _ := newTestRootUI(t)
	addClock(t, settings, model.NewTimezoneEntry("UTC", "", model.FormatGlobal, true))
	if ui.StatusView() == nil {
		t.Fatal("Expected a status view")
	}

	ui.onRemoveLastTimezone()

	if len(settings.Timezones()) != 0 {
		t.Errorf("Expected no timezones, got %d", len(settings.Timezones()))
	}
	if ui.StatusView() != nil {
		t.Error("Expected status view to be removed")
	}
}

func TestRootUI_StartStop(t *testing.T) {
	ui, _, tick := newTestRootUI(t)

	if err := ui.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !tick.Running() {
		t.Error("Expected ticker to be running")
	}

	ui.Stop()
	if tick.Running() {
		t.Error("Expected ticker to be stopped")
	}
}
