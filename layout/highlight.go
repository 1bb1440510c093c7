package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Highlight paints a region of a widget to mark it as selected.
type Highlight struct {
	Color color.NRGBA
	// Region returns the painted region relative to the widget's origin. It
	// is evaluated after the widget is laid out and clamped to its
	// dimensions.
	Region func() image.Rectangle
}

// Layout the widget with the region painted beneath it. An empty region
// paints nothing.
func (h Highlight) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	var region image.Rectangle
	if h.Region != nil {
		region = h.Region().Intersect(image.Rectangle{Max: dims.Size})
	}
	if !region.Empty() {
		paint.FillShape(gtx.Ops, h.Color, clip.Rect(region).Op())
	}
	call.Add(gtx.Ops)
	return dims
}
