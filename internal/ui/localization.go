package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyAppearance         = "appearance"
	KeyAddTimezone        = "add_timezone"
	KeyRemoveLastTimezone = "remove_last_timezone"
	KeyOpenLogs           = "open_logs"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyTimeFormat         = "time_format"
	KeyTwelveHour         = "twelve_hour"
	KeyTwentyFourHour     = "twenty_four_hour"
	KeyShowSeconds        = "show_seconds"
	KeyMenubarOptions     = "menubar_options"
	KeyIncludeDay         = "include_day"
	KeyIncludeDate        = "include_date"
	KeyIncludePlace       = "include_place"
	KeyMenubarMode        = "menubar_mode"
	KeyCompactMode        = "compact_mode"
	KeyStandardMode       = "standard_mode"
	KeyPanelTheme         = "panel_theme"
	KeyTimezone           = "timezone"
	KeyLabel              = "label"
	KeyFavourite          = "favourite"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyFavouriteHint      = "favourite_hint"
	KeyInvalidTimezone    = "invalid_timezone"
	KeyTimezoneAdded      = "timezone_added"
	KeyShowClocks         = "show_clocks"
	KeyTimezoneRemoved    = "timezone_removed"
	KeyDayDisplay         = "day_display"
	KeyRelativeDay        = "relative_day"
	KeyActualDay          = "actual_day"
	KeyActualDateDay      = "actual_date_day"
	KeyToday              = "today"
	KeyTomorrow           = "tomorrow"
	KeyYesterday          = "yesterday"
	KeyAppDisplay         = "app_display"
	KeyTrayOnly           = "tray_only"
	KeyTrayAndStrip       = "tray_and_strip"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Clockbar",
		KeyAppearance:         "Appearance",
		KeyAddTimezone:        "Add Timezone",
		KeyRemoveLastTimezone: "Remove Last Timezone",
		KeyOpenLogs:           "Open Logs",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyTimeFormat:         "Time Format",
		KeyTwelveHour:         "12 Hour",
		KeyTwentyFourHour:     "24 Hour",
		KeyShowSeconds:        "Display the time in seconds",
		KeyMenubarOptions:     "Menubar Display Options",
		KeyIncludeDay:         "Include Day",
		KeyIncludeDate:        "Include Date",
		KeyIncludePlace:       "Include Place Name",
		KeyMenubarMode:        "Menubar Mode",
		KeyCompactMode:        "Compact",
		KeyStandardMode:       "Standard",
		KeyPanelTheme:         "Panel Theme",
		KeyTimezone:           "Timezone",
		KeyLabel:              "Label",
		KeyFavourite:          "Show in menubar",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved",
		KeyFavouriteHint:      "Favourite a timezone to enable menubar display options.",
		KeyInvalidTimezone:    "Unknown timezone",
		KeyTimezoneAdded:      "Timezone added",
		KeyShowClocks:         "Show Clocks",
		KeyTimezoneRemoved:    "Timezone removed",
		KeyDayDisplay:         "Day Display",
		KeyRelativeDay:        "Relative Day",
		KeyActualDay:          "Actual Day",
		KeyActualDateDay:      "Actual Date Day",
		KeyToday:              "Today",
		KeyTomorrow:           "Tomorrow",
		KeyYesterday:          "Yesterday",
		KeyAppDisplay:         "App Display",
		KeyTrayOnly:           "Tray",
		KeyTrayAndStrip:       "Tray and Window",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Clockbar",
		KeyAppearance:         "Оформление",
		KeyAddTimezone:        "Добавить часовой пояс",
		KeyRemoveLastTimezone: "Удалить последний пояс",
		KeyOpenLogs:           "Открыть журналы",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyTimeFormat:         "Формат времени",
		KeyTwelveHour:         "12 часов",
		KeyTwentyFourHour:     "24 часа",
		KeyShowSeconds:        "Показывать секунды",
		KeyMenubarOptions:     "Параметры строки меню",
		KeyIncludeDay:         "Показывать день",
		KeyIncludeDate:        "Показывать дату",
		KeyIncludePlace:       "Показывать место",
		KeyMenubarMode:        "Режим строки меню",
		KeyCompactMode:        "Компактный",
		KeyStandardMode:       "Стандартный",
		KeyPanelTheme:         "Тема",
		KeyTimezone:           "Часовой пояс",
		KeyLabel:              "Подпись",
		KeyFavourite:          "Показывать в строке меню",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки сохранены",
		KeyFavouriteHint:      "Добавьте пояс в избранное, чтобы настроить строку меню.",
		KeyInvalidTimezone:    "Неизвестный часовой пояс",
		KeyTimezoneAdded:      "Часовой пояс добавлен",
		KeyShowClocks:         "Показать часы",
		KeyTimezoneRemoved:    "Часовой пояс удалён",
		KeyDayDisplay:         "Отображение дня",
		KeyRelativeDay:        "Относительный день",
		KeyActualDay:          "День недели",
		KeyActualDateDay:      "День и дата",
		KeyToday:              "Сегодня",
		KeyTomorrow:           "Завтра",
		KeyYesterday:          "Вчера",
		KeyAppDisplay:         "Отображение приложения",
		KeyTrayOnly:           "Трей",
		KeyTrayAndStrip:       "Трей и окно",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Clockbar",
		KeyAppearance:         "Aparência",
		KeyAddTimezone:        "Adicionar Fuso Horário",
		KeyRemoveLastTimezone: "Remover Último Fuso",
		KeyOpenLogs:           "Abrir Logs",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyTimeFormat:         "Formato de Hora",
		KeyTwelveHour:         "12 Horas",
		KeyTwentyFourHour:     "24 Horas",
		KeyShowSeconds:        "Exibir os segundos",
		KeyMenubarOptions:     "Opções da Barra de Menus",
		KeyIncludeDay:         "Incluir Dia",
		KeyIncludeDate:        "Incluir Data",
		KeyIncludePlace:       "Incluir Nome do Local",
		KeyMenubarMode:        "Modo da Barra de Menus",
		KeyCompactMode:        "Compacto",
		KeyStandardMode:       "Padrão",
		KeyPanelTheme:         "Tema",
		KeyTimezone:           "Fuso Horário",
		KeyLabel:              "Rótulo",
		KeyFavourite:          "Mostrar na barra de menus",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas",
		KeyFavouriteHint:      "Favorite um fuso horário para ativar as opções da barra de menus.",
		KeyInvalidTimezone:    "Fuso horário desconhecido",
		KeyTimezoneAdded:      "Fuso horário adicionado",
		KeyShowClocks:         "Mostrar Relógios",
		KeyTimezoneRemoved:    "Fuso horário removido",
		KeyDayDisplay:         "Exibição do dia",
		KeyRelativeDay:        "Dia relativo",
		KeyActualDay:          "Dia da semana",
		KeyActualDateDay:      "Dia e data",
		KeyToday:              "Hoje",
		KeyTomorrow:           "Amanhã",
		KeyYesterday:          "Ontem",
		KeyAppDisplay:         "Exibição do aplicativo",
		KeyTrayOnly:           "Bandeja",
		KeyTrayAndStrip:       "Bandeja e janela",
	}
}
