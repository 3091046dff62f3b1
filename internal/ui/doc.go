package ui

// Package ui contains the Fyne-based desktop user interface: the menu-bar
// strip with one segment per favourite clock, the system tray menu, and the
// appearance and add-timezone windows. All UI strings are localized via
// Localization.
