package cell

import "testing"

func TestTableRegisterIsIdempotent(t *testing.T) {
	var table Table
	built := 0
	factory := func() View {
		built++
		return &textView{}
	}
	if !table.Register("text", factory) {
		t.Errorf("expected first registration to be kept")
	}
	if table.Register("text", func() View { return &imageView{} }) {
		t.Errorf("expected second registration to be ignored")
	}
	if !table.Registered("text") || table.Registered("image") {
		t.Errorf("unexpected registrations")
	}
	if _, ok := table.Dequeue("text", 0).(*textView); !ok {
		t.Errorf("expected the first factory to be used")
	}
	if built != 1 {
		t.Errorf("expected one view to be built, got %d", built)
	}

	row := Wrap(textKind, &textDescription{})
	row.Register(&table)
	row.Register(&table)
	if !table.Registered(row.Kind()) {
		t.Errorf("expected wrapped kind to be registered")
	}
}

func TestTableRecycles(t *testing.T) {
	var table Table
	row := Wrap(textKind, &textDescription{})
	row.Register(&table)
	img := Wrap(imageKind, &imageDescription{})
	img.Register(&table)

	a := row.MakeView(&table, 0)
	b := row.MakeView(&table, 1)
	if a == b {
		t.Fatalf("expected distinct views while both are in use")
	}
	a.SetSelected(true)
	table.Recycle(a)
	table.Recycle(a)
	if n := table.Len("text"); n != 1 {
		t.Errorf("expected one recycled text view, got %d", n)
	}
	if a.Selected() {
		t.Errorf("expected recycled view to be deselected")
	}
	if v := img.MakeView(&table, 2); v == a {
		t.Errorf("recycled text view handed out for an image row")
	}
	if v := row.MakeView(&table, 3); v != a {
		t.Errorf("expected the recycled view to be reused")
	}
	if n := table.Len("text"); n != 0 {
		t.Errorf("expected the pool to be drained, got %d", n)
	}

	// Foreign views are ignored.
	table.Recycle(&textView{})
	if n := table.Len("text"); n != 0 {
		t.Errorf("expected foreign view to be ignored, pool has %d", n)
	}
}

func TestTableDequeueUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected dequeue of an unregistered kind to panic")
		}
	}()
	var table Table
	Wrap(videoKind, &videoDescription{}).MakeView(&table, 0)
}

func TestActionString(t *testing.T) {
	for a, expected := range map[Action]string{
		Copy:       "Copy",
		Delete:     "Delete",
		Action(99): "unknown action",
	} {
		if a.String() != expected {
			t.Errorf("expected %q, got %q", expected, a.String())
		}
	}
}
