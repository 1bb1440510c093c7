package material

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// Note: the values choosen are a best-guess heuristic, open to change.
var (
	DefaultMaxImageHeight  = unit.Dp(320)
	DefaultMaxMessageWidth = unit.Dp(600)
	DefaultDangerColor     = color.NRGBA{R: 200, A: 255}
	DefaultSelectionColor  = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0x40}
)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return icon
}

// Material design icons used by the rows.
var (
	TimerIcon    = mustIcon(icons.ImageTimeLapse)
	FileIcon     = mustIcon(icons.EditorInsertDriveFile)
	LocationIcon = mustIcon(icons.MapsPlace)
	PlayIcon     = mustIcon(icons.AVPlayArrow)
	PauseIcon    = mustIcon(icons.AVPause)
	VideoIcon    = mustIcon(icons.AVMovie)
	LinkIcon     = mustIcon(icons.ContentLink)
	ErrorIcon    = mustIcon(icons.AlertErrorOutline)
)

// Theme wraps the material.Theme with conversation specific colors.
type Theme struct {
	*material.Theme
	// UserColors tracks the color chosen to represent each sender.
	UserColors map[string]UserColorData
	// DangerColor is the color used to indicate errors.
	DangerColor color.NRGBA
	// SelectionColor highlights the selection region of selected rows.
	SelectionColor color.NRGBA
	// LocalColor is the bubble color of messages sent by the local user.
	LocalColor color.NRGBA
}

// UserColorData tracks both a color and its luminance.
type UserColorData struct {
	color.NRGBA
	Luminance float64
}

// NewTheme instantiates a theme using the provided fonts.
func NewTheme(fonts []text.FontFace) *Theme {
	th := material.NewTheme(fonts)
	return &Theme{
		Theme:          th,
		UserColors:     make(map[string]UserColorData),
		DangerColor:    DefaultDangerColor,
		SelectionColor: DefaultSelectionColor,
		LocalColor:     th.ContrastBg,
	}
}

// UserColor returns the color of the given sender, choosing a new one the
// first time the sender is seen.
func (t *Theme) UserColor(sender string) UserColorData {
	if c, ok := t.UserColors[sender]; ok {
		return c
	}
	uc := UserColorData{NRGBA: ToNRGBA(colorful.FastHappyColor().Clamped())}
	uc.Luminance = Luminance(uc.NRGBA)
	t.UserColors[sender] = uc
	return uc
}

// BubbleColor returns the bubble color of a message and a text color that
// stays legible on top of it.
func (t *Theme) BubbleColor(sender string, local bool) (bg, fg color.NRGBA) {
	if local {
		return t.LocalColor, t.ContrastFg
	}
	uc := t.UserColor(sender)
	if uc.Luminance < .5 {
		return uc.NRGBA, t.Bg
	}
	return uc.NRGBA, t.Fg
}

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Luminance computes the relative brightness of a color, normalized between
// [0,1]. Ignores alpha.
func Luminance(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
