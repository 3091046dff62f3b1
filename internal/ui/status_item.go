package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/statusbar"
)

// StatusItem renders one clock segment: a small label above the time
type StatusItem struct {
	widget.BaseWidget

	entry statusbar.Entry

	labelText *canvas.Text
	timeText  *canvas.Text
}

// NewStatusItem creates a segment for a laid-out entry
func NewStatusItem(entry statusbar.Entry) *StatusItem {
	item := &StatusItem{}
	item.ExtendBaseWidget(item)
	item.createUI()
	item.SetEntry(entry)
	return item
}

// createUI creates the text objects
func (si *StatusItem) createUI() {
	si.labelText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	si.labelText.TextSize = CompactLabelTextSize
	si.labelText.Alignment = fyne.TextAlignCenter

	si.timeText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	si.timeText.TextSize = CompactTimeTextSize
	si.timeText.Alignment = fyne.TextAlignCenter
}

// SetEntry shows the entry's current label and time
func (si *StatusItem) SetEntry(entry statusbar.Entry) {
	si.entry = entry
	si.labelText.Text = entry.Timezone.GetDisplayLabel()
	si.timeText.Text = entry.Text
	si.Refresh()
}

// Entry returns the entry currently shown
func (si *StatusItem) Entry() statusbar.Entry {
	return si.entry
}

// CreateRenderer implements fyne.Widget
func (si *StatusItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.New(&twoLineLayout{}, si.labelText, si.timeText))
}

// twoLineLayout splits the height between a caption and a main line, both
// stretched to the full width
type twoLineLayout struct{}

func (l *twoLineLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}

	captionHeight := size.Height * 0.4
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(fyne.NewSize(size.Width, captionHeight))
	objects[1].Move(fyne.NewPos(0, captionHeight))
	objects[1].Resize(fyne.NewSize(size.Width, size.Height-captionHeight))
}

func (l *twoLineLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := fyne.NewSize(0, 0)
	for _, o := range objects {
		sz := o.MinSize()
		if sz.Width > min.Width {
			min.Width = sz.Width
		}
		min.Height += sz.Height
	}
	return min
}
