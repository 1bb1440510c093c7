package cell

import "fmt"

// Table is the view type registry of a list control. It knows how to build
// the view of every registered kind and keeps views that scrolled off screen
// around for reuse.
//
// The zero value is ready to use.
type Table struct {
	factories map[string]func() View
	// reuse holds the recycled views per kind name.
	reuse map[string][]View
	// kinds tracks the kind of every view built by the table.
	kinds map[View]string
}

func (t *Table) init() {
	if t.factories == nil {
		t.factories = make(map[string]func() View)
		t.reuse = make(map[string][]View)
		t.kinds = make(map[View]string)
	}
}

// Register the view factory for the named kind. Only the first registration
// of a name is kept, Register reports whether this call was it.
func (t *Table) Register(name string, factory func() View) bool {
	t.init()
	if _, ok := t.factories[name]; ok {
		return false
	}
	t.factories[name] = factory
	return true
}

// Registered reports whether the named kind has been registered.
func (t *Table) Registered(name string) bool {
	_, ok := t.factories[name]
	return ok
}

// Dequeue returns a view of the named kind for the row at index, preferring a
// recycled one. It panics if the kind was never registered.
func (t *Table) Dequeue(name string, index int) View {
	t.init()
	if pool := t.reuse[name]; len(pool) > 0 {
		v := pool[len(pool)-1]
		pool[len(pool)-1] = nil
		t.reuse[name] = pool[:len(pool)-1]
		return v
	}
	factory, ok := t.factories[name]
	if !ok {
		panic(fmt.Errorf("cell kind %q dequeued for row %d without being registered", name, index))
	}
	v := factory()
	t.kinds[v] = name
	return v
}

// Recycle makes a view that is no longer displayed available to Dequeue. It
// deselects the view. Views the table did not build are ignored.
func (t *Table) Recycle(v View) {
	name, ok := t.kinds[v]
	if !ok {
		return
	}
	for _, pooled := range t.reuse[name] {
		if pooled == v {
			return
		}
	}
	v.SetSelected(false)
	t.reuse[name] = append(t.reuse[name], v)
}

// Len returns the number of recycled views waiting for reuse for the named
// kind.
func (t *Table) Len(name string) int {
	return len(t.reuse[name])
}
