package message

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/conversation/async"
	"git.sr.ht/~gioverse/conversation/cell"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
	"github.com/google/uuid"
)

// MediaEphemeralTimerTopInset lines the ephemeral timer up with media
// content, below the sender name.
const MediaEphemeralTimerTopInset = unit.Dp(20)

// ImageConfiguration is the view model of an image message.
type ImageConfiguration struct {
	ID     uuid.UUID
	Sender string
	Local  bool
	// Size is the pixel size of the original image.
	Size image.Point
	// Obfuscated images only show a placeholder.
	Obfuscated bool
}

// ImageDescription describes the row of an image message.
type ImageDescription struct {
	cell.Base
	// Thumbnails is the loader the row's view fetches the thumbnail with.
	Thumbnails *async.Loader
}

func (d *ImageDescription) Configuration() ImageConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return ImageConfiguration{}
	}
	c := ImageConfiguration{
		ID:         msg.ID,
		Sender:     msg.Sender,
		Local:      msg.Local,
		Obfuscated: msg.Obfuscated,
	}
	if msg.Attachment != nil {
		c.Size = msg.Attachment.Size
	}
	return c
}

func (d *ImageDescription) IsFullWidth() bool { return true }

func (d *ImageDescription) SupportsActions() bool { return supportsActions(d) }

// DidEndDisplayingCell abandons the thumbnail decode of the row.
func (d *ImageDescription) DidEndDisplayingCell() {
	cancelThumbnail(d.Thumbnails, d)
}

// ImageKind pairs image configurations with ImageViews.
func ImageKind(th *chatmaterial.Theme, loader *async.Loader, src ThumbnailSource) cell.Kind[ImageConfiguration, *ImageView] {
	return cell.Kind[ImageConfiguration, *ImageView]{
		Name: ImageKindName,
		New:  func() *ImageView { return NewImageView(th, loader, src) },
	}
}

// ImageView renders the thumbnail of an image message.
type ImageView struct {
	cell.BaseView
	Theme  *chatmaterial.Theme
	State  chatwidget.Cell
	Config ImageConfiguration
	thumbnail
}

// NewImageView allocates an unconfigured ImageView.
func NewImageView(th *chatmaterial.Theme, loader *async.Loader, src ThumbnailSource) *ImageView {
	return &ImageView{
		Theme:     th,
		thumbnail: thumbnail{Loader: loader, Source: src},
	}
}

func (v *ImageView) Configure(c ImageConfiguration, animated bool) {
	if c.ID != v.Config.ID || c.Obfuscated {
		v.State.Thumbnail.Cache(nil)
	}
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

func (v *ImageView) SelectionRect() image.Rectangle { return v.bounds }

func (v *ImageView) EphemeralTimerTopInset() unit.Dp { return MediaEphemeralTimerTopInset }

func (v *ImageView) Layout(gtx C) D {
	dims, bounds := frame{
		Theme:     v.Theme,
		Sender:    v.Config.Sender,
		Local:     v.Config.Local,
		FullWidth: true,
	}.Layout(gtx, &v.State, func(gtx C, fg color.NRGBA) D {
		if v.Config.Obfuscated {
			return v.layoutObfuscated(gtx, fg)
		}
		return v.thumbnail.Layout(gtx, v.Theme, &v.State, v.Config.ID, v.Config.Size)
	})
	v.bounds = bounds
	return dims
}

func (v *ImageView) layoutObfuscated(gtx C, fg color.NRGBA) D {
	bg, _ := v.Theme.BubbleColor(v.Config.Sender, v.Config.Local)
	return chatmaterial.Bubble(bg).Layout(gtx, func(gtx C) D {
		l := material.Body2(v.Theme.Theme, "Image expired")
		l.Color = fg
		return l.Layout(gtx)
	})
}

// VideoConfiguration is the view model of a video message.
type VideoConfiguration struct {
	ID       uuid.UUID
	Sender   string
	Local    bool
	Size     image.Point
	Duration time.Duration
}

// VideoDescription describes the row of a video message.
type VideoDescription struct {
	cell.Base
	Thumbnails *async.Loader
}

func (d *VideoDescription) Configuration() VideoConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return VideoConfiguration{}
	}
	c := VideoConfiguration{
		ID:     msg.ID,
		Sender: msg.Sender,
		Local:  msg.Local,
	}
	if msg.Attachment != nil {
		c.Size = msg.Attachment.Size
		c.Duration = msg.Attachment.Duration
	}
	return c
}

func (d *VideoDescription) IsFullWidth() bool { return true }

func (d *VideoDescription) SupportsActions() bool { return supportsActions(d) }

// DidEndDisplayingCell abandons the thumbnail decode of the row.
func (d *VideoDescription) DidEndDisplayingCell() {
	cancelThumbnail(d.Thumbnails, d)
}

// VideoKind pairs video configurations with VideoViews.
func VideoKind(th *chatmaterial.Theme, loader *async.Loader, src ThumbnailSource) cell.Kind[VideoConfiguration, *VideoView] {
	return cell.Kind[VideoConfiguration, *VideoView]{
		Name: VideoKindName,
		New:  func() *VideoView { return NewVideoView(th, loader, src) },
	}
}

// VideoView renders the thumbnail of a video with a play button and its
// duration.
type VideoView struct {
	cell.BaseView
	Theme  *chatmaterial.Theme
	State  chatwidget.Cell
	Config VideoConfiguration
	thumbnail
}

// NewVideoView allocates an unconfigured VideoView.
func NewVideoView(th *chatmaterial.Theme, loader *async.Loader, src ThumbnailSource) *VideoView {
	return &VideoView{
		Theme:     th,
		thumbnail: thumbnail{Loader: loader, Source: src},
	}
}

func (v *VideoView) Configure(c VideoConfiguration, animated bool) {
	if c.ID != v.Config.ID {
		v.State.Thumbnail.Cache(nil)
	}
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

func (v *VideoView) SelectionRect() image.Rectangle { return v.bounds }

func (v *VideoView) EphemeralTimerTopInset() unit.Dp { return MediaEphemeralTimerTopInset }

func (v *VideoView) Layout(gtx C) D {
	dims, bounds := frame{
		Theme:     v.Theme,
		Sender:    v.Config.Sender,
		Local:     v.Config.Local,
		FullWidth: true,
	}.Layout(gtx, &v.State, func(gtx C, fg color.NRGBA) D {
		return layout.Stack{Alignment: layout.Center}.Layout(gtx,
			layout.Stacked(func(gtx C) D {
				return v.thumbnail.Layout(gtx, v.Theme, &v.State, v.Config.ID, v.Config.Size)
			}),
			layout.Expanded(func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					size := gtx.Dp(unit.Dp(48))
					gtx.Constraints = layout.Exact(image.Pt(size, size))
					return chatmaterial.PlayIcon.Layout(gtx, v.Theme.Bg)
				})
			}),
			layout.Expanded(func(gtx C) D {
				return layout.SE.Layout(gtx, func(gtx C) D {
					return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
						l := material.Caption(v.Theme.Theme, formatDuration(v.Config.Duration))
						l.Color = v.Theme.Bg
						return l.Layout(gtx)
					})
				})
			}),
		)
	})
	v.bounds = bounds
	return dims
}

// thumbnail lays out a thumbnail loaded asynchronously, with a placeholder
// of the final size while it loads.
type thumbnail struct {
	Loader *async.Loader
	Source ThumbnailSource
	bounds image.Rectangle
}

func (t *thumbnail) Layout(gtx C, th *chatmaterial.Theme, state *chatwidget.Cell, id uuid.UUID, size image.Point) D {
	if !state.Thumbnail.Cached() && t.Loader != nil && t.Source != nil {
		src := t.Source
		r := t.Loader.Schedule(id, func(ctx context.Context) (interface{}, error) {
			return src.Thumbnail(ctx, id, size)
		})
		if img, ok := r.Value.(image.Image); ok && r.State == async.Loaded && r.Err == nil {
			state.Thumbnail.Cache(img)
		}
	}
	placeholder := chatmaterial.Bubble(state.Fade.Apply(gtx, color.NRGBA{A: 0x20}))
	return material.Clickable(gtx, &state.Content, func(gtx C) D {
		return chatmaterial.Image{
			Image: widget.Image{
				Src:      state.Thumbnail.Op(),
				Fit:      widget.ScaleDown,
				Position: layout.Center,
			},
			Radii:       unit.Dp(8),
			Size:        size,
			MaxHeight:   chatmaterial.DefaultMaxImageHeight,
			Placeholder: placeholder,
		}.Layout(gtx)
	})
}

// cancelThumbnail abandons the thumbnail load of the description's message.
func cancelThumbnail(loader *async.Loader, d cell.Description) {
	msg := messageOf(d)
	if loader == nil || msg == nil {
		return
	}
	loader.Cancel(msg.ID)
}

// formatDuration formats durations as m:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
