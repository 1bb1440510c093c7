package cell

import (
	"fmt"
	"reflect"
)

// Kind pairs a configuration type with the only view type that renders it.
type Kind[C any, V Configurable[C]] struct {
	// Name uniquely identifies the kind within a Table.
	Name string
	// New constructs an unconfigured view.
	New func() V
}

// binding is the part of an Any that knows the concrete kind of the wrapped
// description.
type binding interface {
	name() string
	register(t *Table)
	makeView(t *Table, index int) View
	configure(v View, animated bool) bool
}

type kindBinding[C any, V Configurable[C]] struct {
	kind Kind[C, V]
	desc Typed[C]
}

func (b kindBinding[C, V]) name() string {
	return b.kind.Name
}

func (b kindBinding[C, V]) register(t *Table) {
	t.Register(b.kind.Name, func() View {
		return b.kind.New()
	})
}

func (b kindBinding[C, V]) makeView(t *Table, index int) View {
	return t.Dequeue(b.kind.Name, index)
}

func (b kindBinding[C, V]) configure(v View, animated bool) bool {
	view, ok := v.(V)
	if !ok {
		return false
	}
	view.Configure(b.desc.Configuration(), animated)
	return true
}

// Any is a type erased Description. It forwards to the description it was
// built from and never copies it.
type Any struct {
	desc Description
	binding
}

// Wrap erases desc behind an Any that builds and configures views of the
// given kind. It panics if the kind is incomplete.
func Wrap[C any, V Configurable[C]](kind Kind[C, V], desc Typed[C]) *Any {
	switch {
	case kind.Name == "":
		panic(fmt.Errorf("cell kind must have a name"))
	case kind.New == nil:
		panic(fmt.Errorf("cell kind %q must provide a view constructor", kind.Name))
	case desc == nil:
		panic(fmt.Errorf("cannot wrap a nil %q description", kind.Name))
	}
	return &Any{
		desc:    desc,
		binding: kindBinding[C, V]{kind: kind, desc: desc},
	}
}

// Kind returns the name of the wrapped description's kind.
func (a *Any) Kind() string {
	return a.binding.name()
}

// Base returns the wrapped description.
func (a *Any) Base() Description {
	return a.desc
}

// Register the view type of the wrapped description in t. Registering the
// same kind more than once has no effect.
func (a *Any) Register(t *Table) {
	a.binding.register(t)
}

// MakeView returns a view of the paired type for the row at index, reusing
// a recycled view when possible. The kind must have been registered.
func (a *Any) MakeView(t *Table, index int) View {
	return a.binding.makeView(t, index)
}

// Configure applies the description's configuration to v. Views of any other
// type than the paired one are left untouched, in which case Configure
// reports false.
func (a *Any) Configure(v View, animated bool) bool {
	if v == nil {
		return false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	return a.binding.configure(v, animated)
}

func (a *Any) Delegate() Delegate { return a.desc.Delegate() }

func (a *Any) SetDelegate(d Delegate) { a.desc.SetDelegate(d) }

func (a *Any) Message() Message { return a.desc.Message() }

func (a *Any) SetMessage(msg Message) { a.desc.SetMessage(msg) }

func (a *Any) ActionController() ActionController { return a.desc.ActionController() }

func (a *Any) SetActionController(c ActionController) { a.desc.SetActionController(c) }

func (a *Any) TopMargin() float32 { return a.desc.TopMargin() }

func (a *Any) SetTopMargin(margin float32) { a.desc.SetTopMargin(margin) }

func (a *Any) ShowEphemeralTimer() bool { return a.desc.ShowEphemeralTimer() }

func (a *Any) SetShowEphemeralTimer(show bool) { a.desc.SetShowEphemeralTimer(show) }

func (a *Any) ContainsHighlightableContent() bool { return a.desc.ContainsHighlightableContent() }

func (a *Any) IsFullWidth() bool { return a.desc.IsFullWidth() }

func (a *Any) SupportsActions() bool { return a.desc.SupportsActions() }

func (a *Any) WillDisplayCell() { a.desc.WillDisplayCell() }

func (a *Any) DidEndDisplayingCell() { a.desc.DidEndDisplayingCell() }
