package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"fyne.io/fyne/v2/app"
	"github.com/alecthomas/kong"

	"github.com/ytget/clockbar/internal/cli"
	"github.com/ytget/clockbar/internal/config"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/platform"
	"github.com/ytget/clockbar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Log at debug level and mirror logs to stderr." env:"CLOCKBAR_DEBUG"`

	Run        cli.RunCmd        `cmd:"" help:"Show the clock strip and tray menu." default:"1"`
	List       cli.ListCmd       `cmd:"" help:"List configured timezones."`
	Add        cli.AddCmd        `cmd:"" help:"Add a timezone."`
	RemoveLast cli.RemoveLastCmd `cmd:"" help:"Remove the most recently added timezone."`
	Import     cli.ImportCmd     `cmd:"" help:"Import timezones from a YAML file."`
	Preview    cli.PreviewCmd    `cmd:"" help:"Print the computed menu bar layout."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("clockbar"),
		kong.Description("Menu bar clocks for several timezones"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": version},
	)

	logDir, err := platform.LogDir()
	ctx.FatalIfErrorf(err)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, LogDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
	}

	fyneApp := app.NewWithID(ui.AppID)
	appCtx := &cli.Context{
		App:      fyneApp,
		Settings: config.NewSettings(fyneApp),
		Out:      os.Stdout,
		LogDir:   logDir,
	}

	ctx.FatalIfErrorf(ctx.Run(appCtx))
}
