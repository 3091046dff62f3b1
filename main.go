package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/platform"
	"github.com/ytget/clockbar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logDir, err := platform.LogDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve log dir: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{Debug: os.Getenv("CLOCKBAR_DEBUG") != "", LogDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
	}
	logger.Info("Clockbar starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)
	settings := config.NewSettings(myApp)

	if err := ui.Run(myApp, settings, logDir); err != nil {
		logger.Error("Clockbar stopped", "error", err)
		os.Exit(1)
	}
}
