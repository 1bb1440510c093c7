package cell

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
)

// DefaultEphemeralTimerTopInset is the ephemeral timer offset used by views
// that do not declare their own.
const DefaultEphemeralTimerTopInset = unit.Dp(8)

// View is a renderable row of the conversation.
type View interface {
	Selected() bool
	SetSelected(selected bool)
	// SelectionRect is the region highlighted while the row is selected,
	// relative to the view's origin. An empty rectangle highlights nothing.
	SelectionRect() image.Rectangle
	// EphemeralTimerTopInset positions the ephemeral timer relative to the
	// top of the view.
	EphemeralTimerTopInset() unit.Dp
	// WillDisplay is called before the view is displayed on screen.
	WillDisplay()
	// DidEndDisplaying is called after the view moved off screen.
	DidEndDisplaying()
	Layout(gtx layout.Context) layout.Dimensions
}

// Configurable is a View populated by configurations of type C.
type Configurable[C any] interface {
	View
	// Configure populates the view. If animated is true the view should
	// animate the change.
	Configure(config C, animated bool)
}

// BaseView provides the defaults of a View. Embed it in concrete views.
type BaseView struct {
	selected bool
}

func (v *BaseView) Selected() bool { return v.selected }

func (v *BaseView) SetSelected(selected bool) { v.selected = selected }

// SelectionRect returns an empty rectangle.
func (v *BaseView) SelectionRect() image.Rectangle { return image.Rectangle{} }

func (v *BaseView) EphemeralTimerTopInset() unit.Dp { return DefaultEphemeralTimerTopInset }

func (v *BaseView) WillDisplay() {}

func (v *BaseView) DidEndDisplaying() {}
