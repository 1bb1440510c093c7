package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// Rounded clips a widget to rounded corners of the given radius.
type Rounded unit.Dp

func (r Rounded) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	radius := gtx.Dp(unit.Dp(r))
	defer clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   radius, NW: radius, SE: radius, SW: radius,
	}.Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
