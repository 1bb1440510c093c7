package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	chatlayout "git.sr.ht/~gioverse/conversation/layout"
)

// Image lays out an image with optionally rounded corners. While the image
// has no source, a placeholder of the given size is laid out instead.
type Image struct {
	widget.Image
	// Radii specifies the amount of rounding.
	Radii unit.Dp
	// Size is the pixel size of the source, used to reserve space while it
	// loads.
	Size image.Point
	// MaxHeight constrains the height of the image.
	MaxHeight unit.Dp
	// Placeholder fills the reserved space while there is no source.
	Placeholder BubbleStyle
}

// Layout the image.
func (img Image) Layout(gtx layout.Context) layout.Dimensions {
	if img.MaxHeight > 0 {
		gtx.Constraints.Max.Y = gtx.Constraints.Constrain(image.Pt(0, gtx.Dp(img.MaxHeight))).Y
	}
	if img.Image.Src == (paint.ImageOp{}) {
		sz := fit(img.Size, gtx.Constraints.Max)
		gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(sz))
		return img.Placeholder.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: gtx.Constraints.Min}
		})
	}
	return chatlayout.Rounded(img.Radii).Layout(gtx, img.Image.Layout)
}

// fit scales size down to fit within max, preserving its aspect ratio.
// Unknown sizes take the full width at a 2:1 ratio.
func fit(size, max image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return image.Pt(max.X, max.X/2)
	}
	scale := 1.0
	if s := float64(max.X) / float64(size.X); s < scale {
		scale = s
	}
	if s := float64(max.Y) / float64(size.Y); s < scale {
		scale = s
	}
	return image.Pt(int(float64(size.X)*scale), int(float64(size.Y)*scale))
}
