package model

// Package model defines domain data structures used across the app: timezone
// entries, their persisted records, time formats, and the display options
// snapshot handed to the menu-bar layout engine.
