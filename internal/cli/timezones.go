package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/logger"
	"github.com/ytget/clockbar/internal/model"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	records := ctx.Settings.Timezones()
	if len(records) == 0 {
		fmt.Fprintln(ctx.Out, "No timezones configured.")
		return nil
	}

	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTIMEZONE\tLABEL\tFORMAT\tMENUBAR")
	for i, result := range model.DecodeRecords(records) {
		if !result.OK() {
			fmt.Fprintf(w, "%d\t<unreadable>\t\t\t\n", i+1)
			continue
		}
		entry := result.Entry
		menubar := "no"
		if entry.Favourite {
			menubar = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, entry.TimezoneID, entry.GetDisplayLabel(), entry.Format, menubar)
	}
	return w.Flush()
}

type AddCmd struct {
	Timezone  string `arg:"" help:"IANA timezone name, or Local."`
	Label     string `short:"l" help:"Label shown above the time."`
	Format    string `short:"f" help:"Time format (global|12h|24h|12h-seconds|24h-seconds)." default:"global"`
	Favourite bool   `help:"Show the clock in the menu bar." default:"true" negatable:""`
}

func (c *AddCmd) Validate() error {
	if _, err := clock.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if !model.TimeFormat(c.Format).IsValid() {
		return fmt.Errorf("unknown time format %q", c.Format)
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	entry := model.NewTimezoneEntry(c.Timezone, c.Label, model.TimeFormat(c.Format), c.Favourite)
	if err := ctx.Settings.AddTimezone(entry); err != nil {
		return err
	}

	logger.Info("Timezone added", "timezone", entry.TimezoneID, "id", entry.ID)
	fmt.Fprintf(ctx.Out, "Added %s (%s)\n", entry.GetDisplayLabel(), entry.TimezoneID)
	return nil
}

type RemoveLastCmd struct{}

func (c *RemoveLastCmd) Run(ctx *Context) error {
	if !ctx.Settings.RemoveLastTimezone() {
		return fmt.Errorf("no timezones to remove")
	}
	fmt.Fprintln(ctx.Out, "Removed the last timezone.")
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"YAML file with a timezones list." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	count, err := ctx.Settings.ImportTimezones(c.Path)
	if err != nil {
		return err
	}

	logger.Info("Timezones imported", "path", c.Path, "count", count)
	fmt.Fprintf(ctx.Out, "Imported %d timezone(s).\n", count)
	return nil
}
