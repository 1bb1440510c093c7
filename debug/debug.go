/*
Package debug provides tools for debugging conversation layouts.
*/
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

// DefaultColor is the color of outlines drawn without one.
var DefaultColor = color.NRGBA{R: 0xff, A: 0xff}

// Outline traces a thin outline around the provided widget. A zero color
// uses DefaultColor.
func Outline(gtx layout.Context, col color.NRGBA, w layout.Widget) layout.Dimensions {
	if col == (color.NRGBA{}) {
		col = DefaultColor
	}
	return widget.Border{
		Color: col,
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
