package ticker

// Package ticker drives periodic menu-bar refreshes. It owns one goroutine
// per running service and hands every tick to a callback; the callback is
// responsible for hopping onto the UI thread.
