package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// await polls the resource until it reaches the expected state.
func await(t *testing.T, l *Loader, tag Tag, load LoadFunc, expected State) Resource {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		r := l.Schedule(tag, load)
		if r.State == expected {
			return r
		}
		select {
		case <-l.Updated():
		case <-time.After(10 * time.Millisecond):
		case <-deadline:
			t.Fatalf("resource %v never reached state %v, last seen %v", tag, expected, r.State)
		}
	}
}

func TestLoaderLoads(t *testing.T) {
	var l Loader
	defer l.Close()

	type testcase struct {
		name  string
		tag   Tag
		load  LoadFunc
		value interface{}
		err   error
	}
	failure := errors.New("decode failed")
	for _, tc := range []testcase{
		{
			name:  "value",
			tag:   "a",
			load:  func(ctx context.Context) (interface{}, error) { return 42, nil },
			value: 42,
		},
		{
			name: "error",
			tag:  "b",
			load: func(ctx context.Context) (interface{}, error) { return nil, failure },
			err:  failure,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := await(t, &l, tc.tag, tc.load, Loaded)
			if r.Value != tc.value {
				t.Errorf("expected value %v, got %v", tc.value, r.Value)
			}
			if !errors.Is(r.Err, tc.err) {
				t.Errorf("expected error %v, got %v", tc.err, r.Err)
			}
		})
	}
}

func TestLoaderCancel(t *testing.T) {
	var l Loader
	defer l.Close()

	var (
		started = make(chan struct{})
		stopped = make(chan error, 1)
		once    sync.Once
	)
	blocking := func(ctx context.Context) (interface{}, error) {
		once.Do(func() { close(started) })
		<-ctx.Done()
		stopped <- ctx.Err()
		return nil, ctx.Err()
	}
	l.Schedule("thumb", blocking)
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatalf("load never started")
	}

	l.Cancel("thumb")
	select {
	case err := <-stopped:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected cancellation, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("in-flight load was not cancelled")
	}
	if stats := l.Stats(); stats.Lookup != 0 || stats.Queued != 0 {
		t.Errorf("expected cancelled resource to be forgotten, got %+v", stats)
	}

	// Scheduling again starts over.
	r := l.Schedule("thumb", func(ctx context.Context) (interface{}, error) { return "fresh", nil })
	if r.State == Cancelled {
		t.Errorf("expected a fresh resource after cancellation")
	}
	r = await(t, &l, "thumb", nil, Loaded)
	if r.Value != "fresh" {
		t.Errorf("expected the reloaded value, got %v", r.Value)
	}

	// Cancelling an unknown tag is harmless.
	l.Cancel("unknown")
}

func TestStateString(t *testing.T) {
	for s, expected := range map[State]string{
		Queued:    "queued",
		Loading:   "loading",
		Loaded:    "loaded",
		Cancelled: "cancelled",
		State(42): "unknown state",
	} {
		if s.String() != expected {
			t.Errorf("expected %q, got %q", expected, s.String())
		}
	}
}
