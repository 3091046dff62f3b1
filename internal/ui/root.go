package ui

import (
	"context"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/model"
	"github.com/ytget/clockbar/internal/platform"
	"github.com/ytget/clockbar/internal/statusbar"
	"github.com/ytget/clockbar/internal/ticker"
)

// RootUI represents the main UI structure: the clock strip window and the
// system tray menu
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	ticker       ticker.Ticker
	formatter    *clock.Formatter
	measurer     statusbar.Measurer
	logDir       string

	// Strip content, rebuilt on every preference change
	statusView    *StatusContainerView
	standardText  *canvas.Text
	menubarClocks []model.TimezoneEntry

	// Tray menu, refreshed on every tick
	trayMenu       *fyne.Menu
	trayClockItems []*fyne.MenuItem
	trayClocks     []model.TimezoneEntry
	hasTray        bool

	appDisplay   config.AppDisplayMode
	stripVisible bool

	// Dialogs open over a separate panel window
	panelWindow      fyne.Window
	appearanceDialog *AppearanceDialog
	timezoneDialog   *AddTimezoneDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, tickSvc ticker.Ticker, logDir string) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		ticker:       tickSvc,
		formatter:    clock.NewFormatter(),
		measurer:     NewFyneMeasurer(),
		logDir:       logDir,
		stripVisible: true,
	}
	_, ui.hasTray = app.(desktop.App)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Ticks arrive on the ticker goroutine
	ui.ticker.SetTickCallback(func(time.Time) {
		fyne.Do(ui.updateTime)
	})
	settings.OnChange(ui.onPreferencesChanged)

	ui.setupUI()
	return ui
}

// Start begins the per-second refresh
func (ui *RootUI) Start(ctx context.Context) error {
	return ui.ticker.Start(ctx)
}

// Stop halts the per-second refresh
func (ui *RootUI) Stop() {
	ui.ticker.Stop()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.applyTheme()
	ui.createMenu()
	ui.rebuild()

	if ui.hasTray {
		// Closing the strip keeps the tray icon alive
		ui.window.SetCloseIntercept(ui.window.Hide)
	}

	logger.Debug("UI setup completed")
}

// StatusView returns the compact-mode container, nil in standard mode or
// when no clock is a favourite
func (ui *RootUI) StatusView() *StatusContainerView {
	return ui.statusView
}

// StripVisible reports whether the clock strip window should be on screen
func (ui *RootUI) StripVisible() bool {
	return ui.stripVisible
}

// rebuild recreates the strip and tray menu from the stored clocks
func (ui *RootUI) rebuild() {
	opts := ui.settings.DisplayOptions()
	records := ui.settings.MenubarTimezones()

	ui.statusView = nil
	ui.standardText = nil
	ui.menubarClocks = decodedEntries(records)

	var content fyne.CanvasObject
	switch {
	case len(records) == 0:
		hint := widget.NewLabel(ui.localization.GetText(KeyFavouriteHint))
		hint.Wrapping = fyne.TextWrapWord
		content = hint
	case opts.CompactMode:
		ui.statusView = NewStatusContainerView(records, opts, ui.measurer, ui.formatter)
		content = ui.statusView
		if skipped := ui.statusView.Layout().Skipped(); skipped > 0 {
			logger.Warn("Skipped unreadable clocks", "count", skipped)
		}
	default:
		ui.standardText = canvas.NewText(ui.formatter.JoinTitles(ui.menubarClocks, opts), theme.Color(theme.ColorNameForeground))
		ui.standardText.TextSize = StandardTextSize
		content = container.NewCenter(ui.standardText)
	}

	ui.window.SetContent(content)
	ui.resizeWindow()
	ui.createTrayMenu(opts)
	ui.applyAppDisplay()

	logger.Debug("Clock strip rebuilt", "clocks", len(records), "compact", opts.CompactMode)
}

// updateTime refreshes every visible clock. Runs on the UI thread.
func (ui *RootUI) updateTime() {
	opts := ui.settings.DisplayOptions()

	switch {
	case ui.statusView != nil:
		if ui.statusView.UpdateTime(opts) {
			ui.resizeWindow()
		}
	case ui.standardText != nil:
		before := ui.standardText.MinSize()
		ui.standardText.Text = ui.formatter.JoinTitles(ui.menubarClocks, opts)
		ui.standardText.Refresh()
		if ui.standardText.MinSize() != before {
			ui.resizeWindow()
		}
	}

	ui.updateTrayClocks(opts)
}

func (ui *RootUI) resizeWindow() {
	content := ui.window.Content()
	if content == nil {
		return
	}

	size := content.MinSize()
	if size.Width < StripMinWidth {
		size.Width = StripMinWidth
	}
	if size.Height < statusbar.ContainerHeight {
		size.Height = statusbar.ContainerHeight
	}
	ui.window.Resize(size)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile), ui.actionItems()...)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// actionItems are shared by the main menu and the tray menu
func (ui *RootUI) actionItems() []*fyne.MenuItem {
	return []*fyne.MenuItem{
		fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeyAppearance)+"…", ui.onShowAppearance),
		fyne.NewMenuItem(IconAdd+" "+ui.localization.GetText(KeyAddTimezone)+"…", ui.onShowAddTimezone),
		fyne.NewMenuItem(ui.localization.GetText(KeyRemoveLastTimezone), ui.onRemoveLastTimezone),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenLogs), ui.onOpenLogs),
	}
}

// createTrayMenu lists every clock followed by the actions. Quit is added by
// the driver.
func (ui *RootUI) createTrayMenu(opts model.DisplayOptions) {
	ui.trayClocks = decodedEntries(ui.settings.Timezones())
	ui.trayClockItems = nil

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(ui.localization.GetText(KeyShowClocks), ui.window.Show),
		fyne.NewMenuItemSeparator(),
	}
	for _, entry := range ui.trayClocks {
		item := fyne.NewMenuItem(ui.trayClockText(entry, opts), nil)
		item.Checked = entry.Favourite
		ui.trayClockItems = append(ui.trayClockItems, item)
		items = append(items, item)
	}
	if len(ui.trayClocks) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}
	items = append(items, ui.actionItems()...)

	ui.trayMenu = fyne.NewMenu(ui.localization.GetText(KeyAppTitle), items...)
	if desk, ok := ui.app.(desktop.App); ok {
		desk.SetSystemTrayMenu(ui.trayMenu)
	}
}

func (ui *RootUI) updateTrayClocks(opts model.DisplayOptions) {
	if ui.trayMenu == nil || len(ui.trayClockItems) == 0 {
		return
	}
	for i, item := range ui.trayClockItems {
		item.Label = ui.trayClockText(ui.trayClocks[i], opts)
	}
	ui.trayMenu.Refresh()
}

func (ui *RootUI) trayClockText(entry model.TimezoneEntry, opts model.DisplayOptions) string {
	day := ui.formatter.Day(entry, ui.settings.GetDayStyle(), ui.relativeDay)
	return IconClock + " " + entry.GetDisplayLabel() + MiddleDotSeparator + ui.formatter.Header(entry, opts) + MiddleDotSeparator + day
}

func (ui *RootUI) relativeDay(offset int) string {
	switch {
	case offset > 0:
		return ui.localization.GetText(KeyTomorrow)
	case offset < 0:
		return ui.localization.GetText(KeyYesterday)
	}
	return ui.localization.GetText(KeyToday)
}

// applyAppDisplay shows or hides the strip when the display mode changes.
// Without a system tray the strip is the only surface and stays visible.
func (ui *RootUI) applyAppDisplay() {
	mode := ui.settings.GetAppDisplay()
	if mode == ui.appDisplay {
		return
	}
	ui.appDisplay = mode

	visible := mode == config.DisplayTrayAndStrip || !ui.hasTray
	if visible == ui.stripVisible {
		return
	}
	ui.stripVisible = visible
	if visible {
		ui.window.Show()
	} else {
		ui.window.Hide()
	}
	logger.Debug("App display changed", "mode", mode, "strip", visible)
}

// onPreferencesChanged re-applies the theme and rebuilds the strip
func (ui *RootUI) onPreferencesChanged() {
	ui.applyTheme()
	ui.rebuild()
}

func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewClockTheme(ui.settings.GetTheme()))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)

	// Dialogs hold translated labels; build them again on next use
	ui.appearanceDialog = nil
	ui.timezoneDialog = nil
	if ui.panelWindow != nil {
		ui.panelWindow.Close()
		ui.panelWindow = nil
	}

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	// Save to settings; the change listener rebuilds the strip and tray
	ui.settings.SetLanguage(langCode)
}

func (ui *RootUI) onShowAppearance() {
	if ui.appearanceDialog == nil {
		ui.appearanceDialog = NewAppearanceDialog(ui.settings, ui.localization, ui.dialogWindow())
	}
	ui.appearanceDialog.Show()
}

func (ui *RootUI) onShowAddTimezone() {
	if ui.timezoneDialog == nil {
		ui.timezoneDialog = NewAddTimezoneDialog(ui.settings, ui.localization, ui.dialogWindow())
	}
	ui.timezoneDialog.Show()
}

// dialogWindow returns the panel window dialogs are shown over; the strip is
// too small to host them
func (ui *RootUI) dialogWindow() fyne.Window {
	if ui.panelWindow == nil {
		ui.panelWindow = ui.app.NewWindow(ui.localization.GetText(KeyAppTitle))
		ui.panelWindow.SetContent(container.NewCenter(widget.NewLabel(ui.localization.GetText(KeyAppTitle))))
		ui.panelWindow.Resize(fyne.NewSize(PreferencesWidth, PreferencesHeight))
		ui.panelWindow.SetCloseIntercept(ui.panelWindow.Hide)
	}
	ui.panelWindow.Show()
	return ui.panelWindow
}

func (ui *RootUI) onRemoveLastTimezone() {
	if !ui.settings.RemoveLastTimezone() {
		return
	}
	logger.Info("Removed last timezone")
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: ui.localization.GetText(KeyTimezoneRemoved),
	})
}

func (ui *RootUI) onOpenLogs() {
	if err := platform.CreateDirectoryIfNotExists(ui.logDir); err != nil {
		logger.Error("Failed to create log directory", "dir", ui.logDir, "error", err)
		return
	}
	if err := platform.OpenFolder(ui.logDir); err != nil {
		logger.Error("Failed to open log directory", "dir", ui.logDir, "error", err)
	}
}

// decodedEntries returns the entries of records that decode, in order
func decodedEntries(records []model.Record) []model.TimezoneEntry {
	entries := make([]model.TimezoneEntry, 0, len(records))
	for _, result := range model.DecodeRecords(records) {
		if result.OK() {
			entries = append(entries, result.Entry)
		}
	}
	return entries
}
