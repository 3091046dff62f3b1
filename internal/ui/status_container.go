package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clockbar/internal/model"
	"github.com/ytget/clockbar/internal/statusbar"
)

// StatusContainerView shows compact-mode clocks side by side. Segment
// positions come from the statusbar.Container; the view only mirrors them.
type StatusContainerView struct {
	widget.BaseWidget

	layout  *statusbar.Container
	items   []*StatusItem
	content *fyne.Container
}

// NewStatusContainerView builds the layout for records and one StatusItem
// per decodable record
func NewStatusContainerView(records []model.Record, opts model.DisplayOptions, measurer statusbar.Measurer, formatter statusbar.Formatter) *StatusContainerView {
	v := &StatusContainerView{
		layout: statusbar.Build(records, opts, measurer, formatter),
	}
	v.ExtendBaseWidget(v)

	v.content = container.New(&segmentLayout{view: v})
	for _, entry := range v.layout.Entries() {
		v.appendItem(entry)
	}
	return v
}

func (v *StatusContainerView) appendItem(entry statusbar.Entry) {
	item := NewStatusItem(entry)
	v.items = append(v.items, item)
	v.content.Add(item)
}

// UpdateTime refreshes every segment for the current time and reports
// whether the strip width changed
func (v *StatusContainerView) UpdateTime(opts model.DisplayOptions) bool {
	changed := v.layout.Refresh(opts)

	for i, entry := range v.layout.Entries() {
		if i < len(v.items) {
			v.items[i].SetEntry(entry)
		}
	}

	if changed {
		v.Refresh()
		v.Resize(v.MinSize())
	}
	return changed
}

// Layout returns the underlying segment layout
func (v *StatusContainerView) Layout() *statusbar.Container {
	return v.layout
}

// Items returns the segment widgets in order
func (v *StatusContainerView) Items() []*StatusItem {
	return v.items
}

// CreateRenderer implements fyne.Widget
func (v *StatusContainerView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// segmentLayout places each item at its stored offset and width
type segmentLayout struct {
	view *StatusContainerView
}

func (l *segmentLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	entries := l.view.layout.Entries()
	for i, o := range objects {
		if i >= len(entries) {
			break
		}
		o.Move(fyne.NewPos(float32(entries[i].Offset), 0))
		o.Resize(fyne.NewSize(float32(entries[i].Width), size.Height))
	}
}

func (l *segmentLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(float32(l.view.layout.Width()), float32(l.view.layout.Height()))
}
