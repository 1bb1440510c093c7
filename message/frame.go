package message

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// senderSpacing separates the sender name from the content.
const senderSpacing = unit.Dp(2)

// frame lays out the parts shared by every message row: the sender name
// above the content of remote messages, and the content aligned to the
// trailing edge for local messages and to the leading edge otherwise.
type frame struct {
	Theme  *chatmaterial.Theme
	Sender string
	Local  bool
	// FullWidth lets the content use the whole row.
	FullWidth bool
	// Bubble draws the bubble of the sender behind the content.
	Bubble bool
}

// Layout the frame around content, which receives the text color to use.
// It returns the dimensions of the row and the bounds of the content, the
// region highlighted when the row is selected.
func (f frame) Layout(gtx C, state *chatwidget.Cell, content func(gtx C, fg color.NRGBA) D) (D, image.Rectangle) {
	y := 0
	if !f.Local && f.Sender != "" {
		l := material.Caption(f.Theme.Theme, f.Sender)
		l.Color = state.Fade.Apply(gtx, f.Theme.UserColor(f.Sender).NRGBA)
		labelGtx := gtx
		labelGtx.Constraints.Min = image.Point{}
		y = l.Layout(labelGtx).Size.Y + gtx.Dp(senderSpacing)
	}

	maxWidth := gtx.Constraints.Max.X
	if !f.FullWidth {
		maxWidth = maxWidth * 4 / 5
		if limit := gtx.Dp(chatmaterial.DefaultMaxMessageWidth); maxWidth > limit {
			maxWidth = limit
		}
	}
	contentGtx := gtx
	contentGtx.Constraints = layout.Constraints{
		Max: image.Pt(maxWidth, gtx.Constraints.Max.Y),
	}

	macro := op.Record(gtx.Ops)
	var dims D
	if f.Bubble {
		bg, fg := f.Theme.BubbleColor(f.Sender, f.Local)
		dims = chatmaterial.Bubble(state.Fade.Apply(gtx, bg)).Layout(contentGtx, func(gtx C) D {
			return content(gtx, state.Fade.Apply(gtx, fg))
		})
	} else {
		dims = content(contentGtx, state.Fade.Apply(gtx, f.Theme.Fg))
	}
	call := macro.Stop()

	x := 0
	if f.Local {
		x = gtx.Constraints.Max.X - dims.Size.X
	}
	origin := image.Pt(x, y)
	stack := op.Offset(origin).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()

	bounds := image.Rectangle{Min: origin, Max: origin.Add(dims.Size)}
	return D{Size: image.Pt(gtx.Constraints.Max.X, y+dims.Size.Y)}, bounds
}
