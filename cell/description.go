/*
Package cell describes how conversation messages become rows of a list.

Each message kind provides a Description with a uniquely typed configuration
and a paired row View that knows how to render it. Wrap erases a description
behind an *Any so that a list control can hold, register, build and configure
rows of every kind without knowing about any of them.

All types in this package must only be used from the layout goroutine.
*/
package cell

// Message is the domain message displayed by a row.
type Message interface {
	// StartSelfDestructionIfNeeded starts the countdown of an ephemeral
	// message. It must be idempotent: it reports true only for the call that
	// actually started the countdown.
	StartSelfDestructionIfNeeded() bool
}

// Action is something a user can do with a message from its row.
type Action uint8

const (
	Copy Action = iota
	Reply
	Forward
	Download
	Like
	Details
	Delete
)

// String converts an action into a printable representation.
func (a Action) String() string {
	switch a {
	case Copy:
		return "Copy"
	case Reply:
		return "Reply"
	case Forward:
		return "Forward"
	case Download:
		return "Download"
	case Like:
		return "Like"
	case Details:
		return "Details"
	case Delete:
		return "Delete"
	default:
		return "unknown action"
	}
}

// Delegate handles actions triggered from within a row.
type Delegate interface {
	PerformAction(action Action, msg Message)
}

// ActionController handles the items of a row's context menu.
type ActionController interface {
	CanPerform(action Action) bool
	Perform(action Action)
}

// Description prepares the contents of one row before it is displayed.
//
// Implementations are expected to be pointers: the list control and the
// erased handle share the same description and observe each other's
// mutations.
type Description interface {
	// TopMargin is the spacing above the row, in Dp. The list control may
	// update it, so any initial value is just a recommendation.
	TopMargin() float32
	SetTopMargin(margin float32)
	// IsFullWidth reports whether the view occupies the entire width of
	// the row, ignoring gutters.
	IsFullWidth() bool
	// SupportsActions reports whether the row offers a context menu.
	SupportsActions() bool
	// ShowEphemeralTimer reports whether the row displays an ephemeral
	// timer in its margin.
	ShowEphemeralTimer() bool
	SetShowEphemeralTimer(show bool)
	// ContainsHighlightableContent reports whether the row contains
	// content, such as links, that can be highlighted.
	ContainsHighlightableContent() bool
	Message() Message
	SetMessage(msg Message)
	Delegate() Delegate
	SetDelegate(d Delegate)
	ActionController() ActionController
	SetActionController(c ActionController)
	// WillDisplayCell is invoked right before the row becomes visible.
	WillDisplayCell()
	// DidEndDisplayingCell is invoked after the row left the screen.
	DidEndDisplayingCell()
}

// Typed is a Description that provides a configuration of type C for its
// paired view.
type Typed[C any] interface {
	Description
	// Configuration returns the view model used to populate the view.
	Configuration() C
}

// Base implements the attributes shared by every Description. Embed a
// pointer-addressable Base in a concrete description and override the
// read-only attributes and hooks as needed.
type Base struct {
	Margin    float32
	Ephemeral bool
	Msg       Message
	Del       Delegate
	Actions   ActionController
}

func (b *Base) TopMargin() float32 { return b.Margin }

func (b *Base) SetTopMargin(margin float32) { b.Margin = margin }

func (b *Base) IsFullWidth() bool { return false }

func (b *Base) SupportsActions() bool { return true }

func (b *Base) ShowEphemeralTimer() bool { return b.Ephemeral }

func (b *Base) SetShowEphemeralTimer(show bool) { b.Ephemeral = show }

func (b *Base) ContainsHighlightableContent() bool { return false }

func (b *Base) Message() Message { return b.Msg }

func (b *Base) SetMessage(msg Message) { b.Msg = msg }

func (b *Base) Delegate() Delegate { return b.Del }

func (b *Base) SetDelegate(d Delegate) { b.Del = d }

func (b *Base) ActionController() ActionController { return b.Actions }

func (b *Base) SetActionController(c ActionController) { b.Actions = c }

// WillDisplayCell starts the self-destruction countdown of the message, if
// it needs one. The message is relied upon to make this idempotent.
func (b *Base) WillDisplayCell() {
	if b.Msg != nil {
		b.Msg.StartSelfDestructionIfNeeded()
	}
}

func (b *Base) DidEndDisplayingCell() {}
