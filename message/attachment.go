package message

import (
	"fmt"
	"image"
	"image/color"
	"path"
	"strings"
	"time"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/conversation/cell"
	chatlayout "git.sr.ht/~gioverse/conversation/layout"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
	"github.com/dustin/go-humanize"
)

// iconSize is the side length of the leading icon of attachment rows.
const iconSize = unit.Dp(32)

// AudioConfiguration is the view model of an audio message.
type AudioConfiguration struct {
	Sender   string
	Local    bool
	Duration time.Duration
	// Progress of the playback in [0,1].
	Progress float32
	Playing  bool
}

// AudioDescription describes the row of an audio message.
type AudioDescription struct {
	cell.Base
}

func (d *AudioDescription) Configuration() AudioConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return AudioConfiguration{}
	}
	c := AudioConfiguration{Sender: msg.Sender, Local: msg.Local}
	if a := msg.Attachment; a != nil {
		c.Duration = a.Duration
		c.Progress = a.Progress
		c.Playing = a.Playing
	}
	return c
}

func (d *AudioDescription) SupportsActions() bool { return supportsActions(d) }

// AudioKind pairs audio configurations with AudioViews.
func AudioKind(th *chatmaterial.Theme) cell.Kind[AudioConfiguration, *AudioView] {
	return cell.Kind[AudioConfiguration, *AudioView]{
		Name: AudioKindName,
		New:  func() *AudioView { return &AudioView{Theme: th} },
	}
}

// AudioView renders the playback state of an audio message.
type AudioView struct {
	cell.BaseView
	Theme  *chatmaterial.Theme
	State  chatwidget.Cell
	Config AudioConfiguration
	bounds image.Rectangle
}

func (v *AudioView) Configure(c AudioConfiguration, animated bool) {
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

func (v *AudioView) SelectionRect() image.Rectangle { return v.bounds }

func (v *AudioView) Layout(gtx C) D {
	dims, bounds := frame{
		Theme:  v.Theme,
		Sender: v.Config.Sender,
		Local:  v.Config.Local,
		Bubble: true,
	}.Layout(gtx, &v.State, func(gtx C, fg color.NRGBA) D {
		icon := chatmaterial.PlayIcon
		if v.Config.Playing {
			icon = chatmaterial.PauseIcon
		}
		return layoutAttachment(gtx, v.Config.Local, icon, fg,
			func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(160))
				bar := material.ProgressBar(v.Theme.Theme, v.Config.Progress)
				bar.Color = fg
				return bar.Layout(gtx)
			},
			func(gtx C) D {
				l := material.Caption(v.Theme.Theme, formatDuration(v.Config.Duration))
				l.Color = fg
				return l.Layout(gtx)
			},
		)
	})
	v.bounds = bounds
	return dims
}

// FileState is the availability of a file's content.
type FileState uint8

const (
	// Remote files have to be downloaded before they can be opened.
	Remote FileState = iota
	Downloaded
)

// String converts a file state into a printable representation.
func (s FileState) String() string {
	switch s {
	case Remote:
		return "Tap to download"
	case Downloaded:
		return "Downloaded"
	default:
		return "unknown file state"
	}
}

// FileConfiguration is the view model of a file message.
type FileConfiguration struct {
	Sender    string
	Local     bool
	Name      string
	Extension string
	Bytes     int64
	State     FileState
}

// FileDescription describes the row of a file message.
type FileDescription struct {
	cell.Base
}

func (d *FileDescription) Configuration() FileConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return FileConfiguration{}
	}
	c := FileConfiguration{Sender: msg.Sender, Local: msg.Local}
	if a := msg.Attachment; a != nil {
		c.Name = a.Name
		c.Extension = strings.ToUpper(strings.TrimPrefix(path.Ext(a.Name), "."))
		c.Bytes = a.Bytes
		if a.Downloaded {
			c.State = Downloaded
		}
	}
	return c
}

func (d *FileDescription) SupportsActions() bool { return supportsActions(d) }

// FileKind pairs file configurations with FileViews.
func FileKind(th *chatmaterial.Theme) cell.Kind[FileConfiguration, *FileView] {
	return cell.Kind[FileConfiguration, *FileView]{
		Name: FileKindName,
		New:  func() *FileView { return &FileView{Theme: th} },
	}
}

// FileView renders the name, size and state of a file.
type FileView struct {
	cell.BaseView
	Theme  *chatmaterial.Theme
	State  chatwidget.Cell
	Config FileConfiguration
	bounds image.Rectangle
}

func (v *FileView) Configure(c FileConfiguration, animated bool) {
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

func (v *FileView) SelectionRect() image.Rectangle { return v.bounds }

func (v *FileView) Layout(gtx C) D {
	dims, bounds := frame{
		Theme:  v.Theme,
		Sender: v.Config.Sender,
		Local:  v.Config.Local,
		Bubble: true,
	}.Layout(gtx, &v.State, func(gtx C, fg color.NRGBA) D {
		return layoutAttachment(gtx, v.Config.Local, chatmaterial.FileIcon, fg,
			func(gtx C) D {
				l := material.Body1(v.Theme.Theme, v.Config.Name)
				l.Color = fg
				l.MaxLines = 1
				return l.Layout(gtx)
			},
			func(gtx C) D {
				l := material.Caption(v.Theme.Theme, FileDetails(v.Config))
				l.Color = fg
				return l.Layout(gtx)
			},
		)
	})
	v.bounds = bounds
	return dims
}

// FileDetails summarizes the size, type and state of a file, for example
// "1.2 MB · PDF · Downloaded".
func FileDetails(c FileConfiguration) string {
	parts := []string{humanize.Bytes(uint64(c.Bytes))}
	if c.Extension != "" {
		parts = append(parts, c.Extension)
	}
	parts = append(parts, c.State.String())
	return strings.Join(parts, " · ")
}

// LocationConfiguration is the view model of a location message.
type LocationConfiguration struct {
	Sender    string
	Local     bool
	Name      string
	Latitude  float64
	Longitude float64
	Zoom      int
}

// LocationDescription describes the row of a location message.
type LocationDescription struct {
	cell.Base
}

func (d *LocationDescription) Configuration() LocationConfiguration {
	msg := messageOf(d)
	if msg == nil {
		return LocationConfiguration{}
	}
	c := LocationConfiguration{Sender: msg.Sender, Local: msg.Local}
	if p := msg.Place; p != nil {
		c.Name = p.Name
		c.Latitude = p.Latitude
		c.Longitude = p.Longitude
		c.Zoom = p.Zoom
	}
	return c
}

func (d *LocationDescription) SupportsActions() bool { return supportsActions(d) }

// LocationKind pairs location configurations with LocationViews.
func LocationKind(th *chatmaterial.Theme) cell.Kind[LocationConfiguration, *LocationView] {
	return cell.Kind[LocationConfiguration, *LocationView]{
		Name: LocationKindName,
		New:  func() *LocationView { return &LocationView{Theme: th} },
	}
}

// LocationView renders a shared location.
type LocationView struct {
	cell.BaseView
	Theme  *chatmaterial.Theme
	State  chatwidget.Cell
	Config LocationConfiguration
	bounds image.Rectangle
}

func (v *LocationView) Configure(c LocationConfiguration, animated bool) {
	v.Config = c
	if animated {
		v.State.Fade.Animate()
	} else {
		v.State.Fade.Stop()
	}
}

func (v *LocationView) SelectionRect() image.Rectangle { return v.bounds }

func (v *LocationView) Layout(gtx C) D {
	dims, bounds := frame{
		Theme:  v.Theme,
		Sender: v.Config.Sender,
		Local:  v.Config.Local,
		Bubble: true,
	}.Layout(gtx, &v.State, func(gtx C, fg color.NRGBA) D {
		name := v.Config.Name
		if name == "" {
			name = "Shared location"
		}
		return layoutAttachment(gtx, v.Config.Local, chatmaterial.LocationIcon, fg,
			func(gtx C) D {
				l := material.Body1(v.Theme.Theme, name)
				l.Color = fg
				return l.Layout(gtx)
			},
			func(gtx C) D {
				l := material.Caption(v.Theme.Theme, Coordinates(v.Config))
				l.Color = fg
				return l.Layout(gtx)
			},
		)
	})
	v.bounds = bounds
	return dims
}

// Coordinates formats the coordinates of a location.
func Coordinates(c LocationConfiguration) string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// layoutAttachment lays out an icon beside a title above a subtitle. The
// icon leads remote messages and trails local ones.
func layoutAttachment(gtx C, local bool, icon *widget.Icon, fg color.NRGBA, title, subtitle layout.Widget) D {
	alignment := layout.Start
	if local {
		alignment = layout.End
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, chatlayout.Reverse(local,
		layout.Rigid(func(gtx C) D {
			size := gtx.Dp(iconSize)
			gtx.Constraints = layout.Exact(image.Pt(size, size))
			return icon.Layout(gtx, fg)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical, Alignment: alignment}.Layout(gtx,
				layout.Rigid(title),
				layout.Rigid(subtitle),
			)
		}),
	)...)
}
