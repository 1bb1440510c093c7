package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// GutterStyle configures a gutter on either side of a row. Both sides can
// optionally display a widget atop the gutter space.
type GutterStyle struct {
	LeftWidth  unit.Dp
	RightWidth unit.Dp
	layout.Alignment
}

// Gutter returns a GutterStyle with gutters wide enough to hold the
// ephemeral timer on the left and the timestamp on the right.
func Gutter() GutterStyle {
	return GutterStyle{
		LeftWidth:  unit.Dp(32),
		RightWidth: unit.Dp(48),
		Alignment:  layout.Start,
	}
}

// Layout the gutter with the left and right widgets laid out atop the gutter
// areas and the center widget in the remaining space in between. Left or
// right may be nil.
func (g GutterStyle) Layout(gtx C, left, center, right layout.Widget) D {
	return layout.Flex{
		Alignment: g.Alignment,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layoutGutterSide(gtx, g.LeftWidth, left)
		}),
		layout.Flexed(1, center),
		layout.Rigid(func(gtx C) D {
			return layoutGutterSide(gtx, g.RightWidth, right)
		}),
	)
}

// layoutGutterSide reserves width and stacks the widget on top of it,
// constrained to that width.
func layoutGutterSide(gtx C, width unit.Dp, w layout.Widget) D {
	spacer := layout.Spacer{Width: width}
	if w == nil {
		return spacer.Layout(gtx)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(spacer.Layout),
		layout.Expanded(func(gtx C) D {
			gtx.Constraints.Max.X = gtx.Dp(width)
			return w(gtx)
		}),
	)
}
