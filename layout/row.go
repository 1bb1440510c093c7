package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Row lays out the content of one conversation row: a top margin, then the
// content between two gutters. Full width rows lay the content across the
// gutters, while the gutter widgets stay on top of it.
type Row struct {
	// TopMargin is the space above the row.
	TopMargin unit.Dp
	// BottomMargin is the space below the row.
	BottomMargin unit.Dp
	// FullWidth lays the content out across the gutters.
	FullWidth bool
	Gutter    GutterStyle
}

// Layout the row. Left and right are laid out atop the gutters and may be
// nil.
func (r Row) Layout(gtx C, left, content, right layout.Widget) D {
	if r.Gutter == (GutterStyle{}) {
		r.Gutter = Gutter()
	}
	return layout.Inset{
		Top:    r.TopMargin,
		Bottom: r.BottomMargin,
	}.Layout(gtx, func(gtx C) D {
		if !r.FullWidth {
			return r.Gutter.Layout(gtx, left, content, right)
		}
		return layout.Stack{}.Layout(gtx,
			layout.Stacked(content),
			layout.Expanded(func(gtx C) D {
				return r.Gutter.Layout(gtx, left, func(gtx C) D {
					return D{Size: gtx.Constraints.Min}
				}, right)
			}),
		)
	})
}
