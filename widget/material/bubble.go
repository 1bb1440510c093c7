package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// BubbleStyle defines a colored surface with (optionally) rounded corners.
type BubbleStyle struct {
	// The radius of the corners of the surface.
	// Non-rounded rectangles can just provide a zero.
	CornerRadius unit.Dp
	Color        color.NRGBA
	// Padding separates the content from the edges of the surface.
	Padding layout.Inset
}

// Bubble creates a BubbleStyle of the given color with rounded corners.
func Bubble(c color.NRGBA) BubbleStyle {
	return BubbleStyle{
		CornerRadius: unit.Dp(12),
		Color:        c,
		Padding:      layout.UniformInset(unit.Dp(8)),
	}
}

// Layout renders the BubbleStyle beneath the provided widget.
func (b BubbleStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			surface := clip.UniformRRect(image.Rectangle{
				Max: gtx.Constraints.Min,
			}, gtx.Dp(b.CornerRadius))
			paint.FillShape(gtx.Ops, b.Color, surface.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return b.Padding.Layout(gtx, w)
		}),
	)
}
