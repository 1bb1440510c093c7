package debug

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
)

func TestOutlineKeepsDimensions(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(800, 600)},
	}
	for _, col := range []color.NRGBA{{}, {G: 0xff, A: 0xff}} {
		dims := Outline(gtx, col, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(120, 40)}
		})
		if dims.Size != image.Pt(120, 40) {
			t.Errorf("expected the widget's dimensions, got %v", dims.Size)
		}
	}
}
