package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClock    = "🕒"
	IconAdd      = "+"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Status bar text sizing
const (
	CompactTimeTextSize  float32 = 13
	CompactLabelTextSize float32 = 9
	StandardTextSize     float32 = 14
)

// Window sizing
const (
	StripMinWidth     float32 = 120
	PreferencesWidth  float32 = 460
	PreferencesHeight float32 = 420
	AddTimezoneWidth  float32 = 420
	AddTimezoneHeight float32 = 300
)
