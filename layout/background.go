package layout

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
)

// Background lays out a widget over a colored background filling the
// widget's dimensions.
type Background color.NRGBA

func (bg Background) Layout(gtx C, w layout.Widget) D {
	if bg.A == 0 {
		return w(gtx)
	}
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(component.Rect{
			Size:  dims.Size,
			Color: color.NRGBA(bg),
		}.Layout),
		layout.Stacked(func(gtx C) D {
			call.Add(gtx.Ops)
			return dims
		}),
	)
}
