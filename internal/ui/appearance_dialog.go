package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/model"
)

// AppearanceDialog edits the menu bar display preferences
type AppearanceDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	timeFormatRadio *widget.RadioGroup
	secondsCheck    *widget.Check
	dayCheck        *widget.Check
	dateCheck       *widget.Check
	placeCheck      *widget.Check
	modeRadio       *widget.RadioGroup
	dayStyleRadio   *widget.RadioGroup
	displayRadio    *widget.RadioGroup
	themeSelect     *widget.Select
	hintLabel       *widget.Label
}

var dayStyleKeys = map[model.DayStyle]string{
	model.DayRelative:   KeyRelativeDay,
	model.DayActual:     KeyActualDay,
	model.DayActualDate: KeyActualDateDay,
}

var appDisplayKeys = map[config.AppDisplayMode]string{
	config.DisplayTrayOnly:     KeyTrayOnly,
	config.DisplayTrayAndStrip: KeyTrayAndStrip,
}

// NewAppearanceDialog creates a new appearance dialog
func NewAppearanceDialog(settings *config.Settings, loc *Localization, window fyne.Window) *AppearanceDialog {
	ad := &AppearanceDialog{
		settings: settings,
		loc:      loc,
		window:   window,
	}

	ad.createUI()
	return ad
}

// Show displays the appearance dialog
func (ad *AppearanceDialog) Show() {
	ad.loadCurrentSettings()
	ad.dialog.Show()
}

func (ad *AppearanceDialog) createUI() {
	twelve := ad.loc.GetText(KeyTwelveHour)
	twentyFour := ad.loc.GetText(KeyTwentyFourHour)
	ad.timeFormatRadio = widget.NewRadioGroup([]string{twelve, twentyFour}, nil)
	ad.timeFormatRadio.Horizontal = true
	ad.timeFormatRadio.Required = true

	ad.secondsCheck = widget.NewCheck(ad.loc.GetText(KeyShowSeconds), nil)

	ad.dayCheck = widget.NewCheck(ad.loc.GetText(KeyIncludeDay), nil)
	ad.dateCheck = widget.NewCheck(ad.loc.GetText(KeyIncludeDate), nil)
	ad.placeCheck = widget.NewCheck(ad.loc.GetText(KeyIncludePlace), nil)

	compact := ad.loc.GetText(KeyCompactMode)
	standard := ad.loc.GetText(KeyStandardMode)
	ad.modeRadio = widget.NewRadioGroup([]string{compact, standard}, ad.onModeChanged)
	ad.modeRadio.Horizontal = true
	ad.modeRadio.Required = true

	dayStyles := []string{}
	for _, style := range model.DayStyleOptions() {
		dayStyles = append(dayStyles, ad.loc.GetText(dayStyleKeys[style]))
	}
	ad.dayStyleRadio = widget.NewRadioGroup(dayStyles, nil)
	ad.dayStyleRadio.Required = true

	ad.displayRadio = widget.NewRadioGroup([]string{
		ad.loc.GetText(KeyTrayOnly),
		ad.loc.GetText(KeyTrayAndStrip),
	}, nil)
	ad.displayRadio.Horizontal = true
	ad.displayRadio.Required = true

	themeOptions := []string{}
	for _, preset := range ad.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(preset))
	}
	ad.themeSelect = widget.NewSelect(themeOptions, nil)

	ad.hintLabel = widget.NewLabel(ad.loc.GetText(KeyFavouriteHint))
	ad.hintLabel.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabel(ad.loc.GetText(KeyTimeFormat)),
		ad.timeFormatRadio,
		ad.secondsCheck,

		widget.NewSeparator(),
		widget.NewLabel(ad.loc.GetText(KeyMenubarOptions)),
		ad.dayCheck,
		ad.dateCheck,
		ad.placeCheck,

		widget.NewLabel(ad.loc.GetText(KeyMenubarMode)),
		ad.modeRadio,
		ad.hintLabel,

		widget.NewSeparator(),
		widget.NewLabel(ad.loc.GetText(KeyDayDisplay)),
		ad.dayStyleRadio,
		widget.NewLabel(ad.loc.GetText(KeyAppDisplay)),
		ad.displayRadio,

		widget.NewSeparator(),
		widget.NewLabel(ad.loc.GetText(KeyPanelTheme)),
		ad.themeSelect,
	)

	ad.dialog = dialog.NewCustomConfirm(
		ad.loc.GetText(KeyAppearance),
		ad.loc.GetText(KeySave),
		ad.loc.GetText(KeyCancel),
		form,
		ad.onSave,
		ad.window,
	)

	ad.dialog.Resize(fyne.NewSize(PreferencesWidth, PreferencesHeight))
}

// loadCurrentSettings copies stored preferences into the controls
func (ad *AppearanceDialog) loadCurrentSettings() {
	if ad.settings.ShouldDisplay(config.OptionTwelveHour) {
		ad.timeFormatRadio.SetSelected(ad.loc.GetText(KeyTwelveHour))
	} else {
		ad.timeFormatRadio.SetSelected(ad.loc.GetText(KeyTwentyFourHour))
	}
	ad.secondsCheck.SetChecked(ad.settings.ShouldDisplay(config.OptionShowSeconds))

	ad.dayCheck.SetChecked(ad.settings.ShowDayInMenubar())
	ad.dateCheck.SetChecked(ad.settings.ShowDateInMenubar())
	ad.placeCheck.SetChecked(ad.settings.ShouldDisplay(config.OptionShowPlace))

	if ad.settings.ShouldDisplay(config.OptionCompactMode) {
		ad.modeRadio.SetSelected(ad.loc.GetText(KeyCompactMode))
	} else {
		ad.modeRadio.SetSelected(ad.loc.GetText(KeyStandardMode))
	}

	ad.dayStyleRadio.SetSelected(ad.loc.GetText(dayStyleKeys[ad.settings.GetDayStyle()]))
	ad.displayRadio.SetSelected(ad.loc.GetText(appDisplayKeys[ad.settings.GetAppDisplay()]))

	ad.themeSelect.SetSelected(string(ad.settings.GetTheme()))
	ad.updateMenubarControls()
}

func (ad *AppearanceDialog) onModeChanged(string) {
	ad.updateMenubarControls()
}

// updateMenubarControls enables the menu bar options only when at least one
// clock is a favourite. Place names are not shown in compact mode.
func (ad *AppearanceDialog) updateMenubarControls() {
	hasFavourites := len(ad.settings.MenubarTimezones()) > 0

	controls := []fyne.Disableable{ad.dayCheck, ad.dateCheck, ad.modeRadio}
	for _, c := range controls {
		if hasFavourites {
			c.Enable()
		} else {
			c.Disable()
		}
	}

	if hasFavourites && !ad.isCompactSelected() {
		ad.placeCheck.Enable()
	} else {
		ad.placeCheck.Disable()
	}

	if hasFavourites {
		ad.hintLabel.Hide()
	} else {
		ad.hintLabel.Show()
	}
}

func (ad *AppearanceDialog) isCompactSelected() bool {
	return ad.modeRadio.Selected == ad.loc.GetText(KeyCompactMode)
}

func (ad *AppearanceDialog) selectedDayStyle() model.DayStyle {
	for style, key := range dayStyleKeys {
		if ad.dayStyleRadio.Selected == ad.loc.GetText(key) {
			return style
		}
	}
	return config.DefaultDayStyle
}

func (ad *AppearanceDialog) selectedAppDisplay() config.AppDisplayMode {
	for mode, key := range appDisplayKeys {
		if ad.displayRadio.Selected == ad.loc.GetText(key) {
			return mode
		}
	}
	return config.DefaultAppDisplay
}

// onSave stores the controls back into preferences. Listeners hear about
// the save once.
func (ad *AppearanceDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	ad.settings.Batch(func() {
		ad.settings.SetDisplay(config.OptionTwelveHour, ad.timeFormatRadio.Selected == ad.loc.GetText(KeyTwelveHour))
		ad.settings.SetDisplay(config.OptionShowSeconds, ad.secondsCheck.Checked)

		if ad.settings.ShowDayInMenubar() != ad.dayCheck.Checked {
			ad.settings.SetShowDayInMenubar(ad.dayCheck.Checked)
		}
		if ad.settings.ShowDateInMenubar() != ad.dateCheck.Checked {
			ad.settings.SetShowDateInMenubar(ad.dateCheck.Checked)
		}

		compact := ad.isCompactSelected()
		ad.settings.SetDisplay(config.OptionCompactMode, compact)
		ad.settings.SetDisplay(config.OptionShowPlace, ad.placeCheck.Checked && !compact)

		ad.settings.SetDayStyle(ad.selectedDayStyle())
		ad.settings.SetAppDisplay(ad.selectedAppDisplay())

		if ad.themeSelect.Selected != "" {
			ad.settings.SetTheme(config.ThemePreset(ad.themeSelect.Selected))
		}
	})

	dialog.ShowInformation(ad.loc.GetText(KeyAppearance), ad.loc.GetText(KeySettingsSaved), ad.window)
}
