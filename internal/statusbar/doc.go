package statusbar

// Package statusbar sizes and positions the menu-bar clock segments. It
// estimates a width per clock from the display options, measures the
// rendered header against that estimate, and lays segments out left to
// right. It knows nothing about Fyne; text metrics and time formatting are
// supplied through the Measurer and Formatter interfaces.
