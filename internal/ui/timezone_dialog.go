package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/model"
)

// AddTimezoneDialog asks for a timezone and stores it as a new clock
type AddTimezoneDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	timezoneEntry  *widget.SelectEntry
	labelEntry     *widget.Entry
	formatSelect   *widget.Select
	favouriteCheck *widget.Check
}

// NewAddTimezoneDialog creates a new add-timezone dialog
func NewAddTimezoneDialog(settings *config.Settings, loc *Localization, window fyne.Window) *AddTimezoneDialog {
	td := &AddTimezoneDialog{
		settings: settings,
		loc:      loc,
		window:   window,
	}

	td.createUI()
	return td
}

// Show resets the form and displays the dialog
func (td *AddTimezoneDialog) Show() {
	td.reset()
	td.dialog.Show()
}

func (td *AddTimezoneDialog) createUI() {
	td.timezoneEntry = widget.NewSelectEntry(clock.PresetTimezones())
	td.timezoneEntry.SetPlaceHolder("Europe/Lisbon")

	td.labelEntry = widget.NewEntry()

	formats := []string{}
	for _, f := range model.TimeFormatOptions() {
		formats = append(formats, f.String())
	}
	td.formatSelect = widget.NewSelect(formats, nil)

	td.favouriteCheck = widget.NewCheck(td.loc.GetText(KeyFavourite), nil)

	form := container.NewVBox(
		widget.NewLabel(td.loc.GetText(KeyTimezone)),
		td.timezoneEntry,
		widget.NewLabel(td.loc.GetText(KeyLabel)),
		td.labelEntry,
		widget.NewLabel(td.loc.GetText(KeyTimeFormat)),
		td.formatSelect,
		td.favouriteCheck,
	)

	td.dialog = dialog.NewCustomConfirm(
		td.loc.GetText(KeyAddTimezone),
		td.loc.GetText(KeySave),
		td.loc.GetText(KeyCancel),
		form,
		td.onSave,
		td.window,
	)

	td.dialog.Resize(fyne.NewSize(AddTimezoneWidth, AddTimezoneHeight))
}

func (td *AddTimezoneDialog) reset() {
	td.timezoneEntry.SetText("")
	td.labelEntry.SetText("")
	td.formatSelect.SetSelected(model.FormatGlobal.String())
	td.favouriteCheck.SetChecked(true)
}

func (td *AddTimezoneDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := td.submit(); err != nil {
		logger.Warn("Failed to add timezone", "error", err)
		dialog.ShowError(err, td.window)
		return
	}
	dialog.ShowInformation(td.loc.GetText(KeyAddTimezone), td.loc.GetText(KeyTimezoneAdded), td.window)
}

// submit validates the form and stores the clock
func (td *AddTimezoneDialog) submit() error {
	name := strings.TrimSpace(td.timezoneEntry.Text)
	if name == "" {
		return model.ErrMissingTimezone
	}
	if _, err := clock.LoadLocation(name); err != nil {
		return fmt.Errorf("%s: %q", td.loc.GetText(KeyInvalidTimezone), name)
	}

	format := model.TimeFormat(td.formatSelect.Selected)
	if !format.IsValid() {
		format = model.FormatGlobal
	}

	entry := model.NewTimezoneEntry(name, strings.TrimSpace(td.labelEntry.Text), format, td.favouriteCheck.Checked)
	if err := td.settings.AddTimezone(entry); err != nil {
		return err
	}

	logger.Info("Timezone added", "timezone", name, "favourite", entry.Favourite)
	return nil
}
