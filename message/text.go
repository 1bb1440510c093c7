package message

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/richtext"
	"git.sr.ht/~gioverse/conversation/cell"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
)

// TextConfiguration is the view model of a text message.
type TextConfiguration struct {
	Sender string
	Local  bool
	Text   string
	// ShowsLinkPreview enables the link preview area beneath the text.
	ShowsLinkPreview bool
	LinkTitle        string
	LinkURL          string
}

// TextDescription describes the row of a text message.
type TextDescription struct {
	cell.Base
}

// Configuration derives the view model from the current message.
func (d *TextDescription) Configuration() TextConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return TextConfiguration{}
	}
	c := TextConfiguration{
		Sender: msg.Sender,
		Local:  msg.Local,
		Text:   msg.Text,
	}
	if msg.Preview != nil {
		c.ShowsLinkPreview = true
		c.LinkTitle = msg.Preview.Title
		c.LinkURL = msg.Preview.URL
	}
	return c
}

// ContainsHighlightableContent reports whether the text carries a link.
func (d *TextDescription) ContainsHighlightableContent() bool {
	msg := messageOf(d)
	return msg != nil && msg.Preview != nil
}

func (d *TextDescription) SupportsActions() bool { return supportsActions(d) }

// TextKind pairs text configurations with TextViews.
func TextKind(th *chatmaterial.Theme) cell.Kind[TextConfiguration, *TextView] {
	return cell.Kind[TextConfiguration, *TextView]{
		Name: TextKindName,
		New:  func() *TextView { return NewTextView(th) },
	}
}

// TextView renders a text message in a bubble, with an optional link
// preview.
type TextView struct {
	cell.BaseView
	Theme *chatmaterial.Theme
	State chatwidget.Cell
	// Config is the configuration currently shown.
	Config TextConfiguration
	bubble image.Rectangle
}

// NewTextView allocates an unconfigured TextView.
func NewTextView(th *chatmaterial.Theme) *TextView {
	return &TextView{Theme: th}
}

func (v *TextView) Configure(c TextConfiguration, animated bool) {
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

// SelectionRect is the bubble of the last frame.
func (v *TextView) SelectionRect() image.Rectangle {
	return v.bubble
}

func (v *TextView) Layout(gtx C) D {
	dims, bubble := frame{
		Theme:  v.Theme,
		Sender: v.Config.Sender,
		Local:  v.Config.Local,
		Bubble: true,
	}.Layout(gtx, &v.State, v.layoutContent)
	v.bubble = bubble
	return dims
}

func (v *TextView) layoutContent(gtx C, fg color.NRGBA) D {
	body := material.Body1(v.Theme.Theme, "")
	text := richtext.Text(&v.State.Text, v.Theme.Shaper, richtext.SpanStyle{
		Font:    body.Font,
		Size:    body.TextSize,
		Color:   fg,
		Content: v.Config.Text,
	})
	if !v.Config.ShowsLinkPreview {
		return text.Layout(gtx)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(text.Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			return v.layoutPreview(gtx, fg)
		}),
	)
}

// layoutPreview lays out the link preview: an icon beside the title and the
// link.
func (v *TextView) layoutPreview(gtx C, fg color.NRGBA) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			size := gtx.Dp(unit.Dp(24))
			gtx.Constraints = layout.Exact(image.Pt(size, size))
			return chatmaterial.LinkIcon.Layout(gtx, fg)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx C) D {
			title := material.Body2(v.Theme.Theme, v.Config.LinkTitle)
			title.Color = fg
			link := material.Caption(v.Theme.Theme, v.Config.LinkURL)
			link.Color = fg
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(title.Layout),
				layout.Rigid(link.Layout),
			)
		}),
	)
}
