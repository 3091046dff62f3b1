package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	"github.com/ytget/clockbar/internal/clock"
	"github.com/ytget/clockbar/internal/statusbar"
)

// PreviewCmd prints the menu bar layout computed for the stored clocks
type PreviewCmd struct {
	CellWidth float64 `help:"Points per terminal cell." default:"7"`
}

func (c *PreviewCmd) Run(ctx *Context) error {
	if c.CellWidth <= 0 {
		return fmt.Errorf("cell width must be greater than zero")
	}

	opts := ctx.Settings.DisplayOptions()
	measurer := &statusbar.CellMeasurer{CellWidth: c.CellWidth, CellHeight: statusbar.ContainerHeight}
	layout := statusbar.Build(ctx.Settings.MenubarTimezones(), opts, measurer, clock.NewFormatter())

	if layout.Len() == 0 {
		fmt.Fprintln(ctx.Out, "No menu bar clocks. Add one with: clockbar add <timezone>")
		return nil
	}

	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OFFSET\tWIDTH\tLABEL\tTEXT")
	for _, entry := range layout.Entries() {
		fmt.Fprintf(w, "%.0f\t%.0f\t%s\t%s\n", entry.Offset, entry.Width, entry.Timezone.GetDisplayLabel(), entry.Text)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "\nStrip: %.1f x %.0f", layout.Width(), layout.Height())
	if skipped := layout.Skipped(); skipped > 0 {
		fmt.Fprintf(ctx.Out, " (%d unreadable record(s) skipped)", skipped)
	}
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, renderStrip(layout.Entries(), c.CellWidth))
	return nil
}

// renderStrip draws each segment padded to its width in cells
func renderStrip(entries []statusbar.Entry, cellWidth float64) string {
	var b strings.Builder
	b.WriteString("|")
	for _, entry := range entries {
		cells := int(entry.Width / cellWidth)
		b.WriteString(runewidth.FillRight(runewidth.Truncate(entry.Text, cells, ""), cells))
		b.WriteString("|")
	}
	return b.String()
}
