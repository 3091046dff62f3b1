// Package cli implements the clockbar commands. Every command works on the
// same preferences store as the clock strip.
package cli

import (
	"io"

	"fyne.io/fyne/v2"

	"github.com/ytget/clockbar/internal/config"
)

// Context is passed to every command's Run method
type Context struct {
	App      fyne.App
	Settings *config.Settings
	Out      io.Writer
	LogDir   string
}
