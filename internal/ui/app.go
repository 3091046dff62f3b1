package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/ticker"
)

// Application identity. The GUI and the CLI share the preferences store
// selected by AppID.
const (
	AppID   = "com.ytget.clockbar"
	AppName = "Clockbar"
)

// Run shows the clock strip, or only the tray icon when the strip is hidden,
// and blocks until the application quits
func Run(a fyne.App, settings *config.Settings, logDir string) error {
	window := a.NewWindow(AppName)
	root := NewRootUI(window, a, settings, ticker.NewService(ticker.DefaultInterval), logDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := root.Start(ctx); err != nil {
		return fmt.Errorf("failed to start clock: %w", err)
	}
	defer root.Stop()

	logger.Info("Clock strip running", "clocks", len(settings.MenubarTimezones()))
	if root.StripVisible() {
		window.ShowAndRun()
	} else {
		a.Run()
	}
	return nil
}
