package cli

import "github.com/ytget/clockbar/internal/ui"

// RunCmd starts the clock strip and tray menu
type RunCmd struct{}

func (c *RunCmd) Run(ctx *Context) error {
	return ui.Run(ctx.App, ctx.Settings, ctx.LogDir)
}
