package model

// DisplayOptions is a snapshot of the global menu-bar preferences. It is
// passed by value into the layout engine on every call so the engine never
// reads ambient settings.
type DisplayOptions struct {
	ShowDay     bool
	ShowDate    bool
	TwelveHour  bool
	ShowSeconds bool
	CompactMode bool
	ShowPlace   bool
}
