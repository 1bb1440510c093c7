/*
Package message provides the descriptions and row views of every kind of
conversation message.

Every kind pairs a configuration with the view that renders it through a
cell.Kind. A Builder turns domain messages into type erased *cell.Any rows,
which is the only place that switches over message kinds.
*/
package message

import (
	"context"
	"image"
	"time"

	"git.sr.ht/~gioverse/conversation/async"
	"git.sr.ht/~gioverse/conversation/cell"
	"git.sr.ht/~gioverse/conversation/model"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
	"github.com/google/uuid"
)

// Kind names, unique within a cell.Table.
const (
	TextKindName     = "text"
	ImageKindName    = "image"
	VideoKindName    = "video"
	AudioKindName    = "audio"
	FileKindName     = "file"
	LocationKindName = "location"
)

// Top margins applied by DescribeAll, in Dp.
const (
	DefaultTopMargin float32 = 16
	GroupedTopMargin float32 = 4
)

// GroupingWindow is the longest gap between two messages of the same sender
// that still groups them together.
const GroupingWindow = 5 * time.Minute

// ThumbnailSource fetches the thumbnails of image and video messages. It is
// called off the layout goroutine and should honor ctx cancellation.
type ThumbnailSource interface {
	Thumbnail(ctx context.Context, id uuid.UUID, size image.Point) (image.Image, error)
}

// Builder builds the rows of a conversation.
type Builder struct {
	Theme *chatmaterial.Theme
	// Thumbnails loads thumbnails from Source off the layout goroutine.
	Thumbnails *async.Loader
	Source     ThumbnailSource
	// Delegate is handed to every row.
	Delegate cell.Delegate
	// Actions returns the action controller of a message's row. It may be
	// nil, in which case rows offer no context menu.
	Actions func(msg *model.Message) cell.ActionController
}

// Describe builds the row of msg. Messages of unknown kind are shown as text.
func (b *Builder) Describe(msg *model.Message) *cell.Any {
	base := cell.Base{
		Margin:    DefaultTopMargin,
		Ephemeral: msg.IsEphemeral(),
		Msg:       msg,
		Del:       b.Delegate,
	}
	if b.Actions != nil {
		base.Actions = b.Actions(msg)
	}
	switch msg.Kind {
	case model.Image:
		return cell.Wrap(ImageKind(b.Theme, b.Thumbnails, b.Source), &ImageDescription{Base: base, Thumbnails: b.Thumbnails})
	case model.Video:
		return cell.Wrap(VideoKind(b.Theme, b.Thumbnails, b.Source), &VideoDescription{Base: base, Thumbnails: b.Thumbnails})
	case model.Audio:
		return cell.Wrap(AudioKind(b.Theme), &AudioDescription{Base: base})
	case model.File:
		return cell.Wrap(FileKind(b.Theme), &FileDescription{Base: base})
	case model.Location:
		return cell.Wrap(LocationKind(b.Theme), &LocationDescription{Base: base})
	default:
		return cell.Wrap(TextKind(b.Theme), &TextDescription{Base: base})
	}
}

// DescribeAll builds the rows of msgs in order. Consecutive messages of the
// same sender sent within GroupingWindow of each other are grouped with a
// narrower top margin.
func (b *Builder) DescribeAll(msgs []*model.Message) []*cell.Any {
	rows := make([]*cell.Any, 0, len(msgs))
	for ii, msg := range msgs {
		row := b.Describe(msg)
		if ii > 0 && grouped(msgs[ii-1], msg) {
			row.SetTopMargin(GroupedTopMargin)
		}
		rows = append(rows, row)
	}
	return rows
}

func grouped(prev, msg *model.Message) bool {
	return prev.Sender == msg.Sender &&
		prev.Local == msg.Local &&
		msg.SentAt.Sub(prev.SentAt) < GroupingWindow
}

// messageOf returns the domain message of a description, if it has one.
func messageOf(d cell.Description) *model.Message {
	msg, _ := d.Message().(*model.Message)
	return msg
}

// supportsActions reports whether the message offers actions: obfuscated
// messages do not.
func supportsActions(d cell.Description) bool {
	msg := messageOf(d)
	return msg == nil || !msg.Obfuscated
}
