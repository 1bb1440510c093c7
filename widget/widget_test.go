package widget

import (
	"image"
	"testing"
	"time"
)

func TestFadeProgress(t *testing.T) {
	start := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	type testcase struct {
		name     string
		at       time.Duration
		expected float32
	}
	var f Fade
	if p := f.Progress(start); p != 1 {
		t.Errorf("idle fade should be opaque, got %v", p)
	}
	for _, tc := range []testcase{
		{name: "start", at: 0, expected: 0},
		{name: "half way", at: FadeDuration / 2, expected: 0.5},
		{name: "done", at: FadeDuration, expected: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := Fade{}
			f.Start(start)
			if p := f.Progress(start.Add(tc.at)); p != tc.expected {
				t.Errorf("expected progress %v, got %v", tc.expected, p)
			}
		})
	}
	f.Animate()
	if p := f.Progress(start); p != 0 {
		t.Errorf("animation should start on the next frame, got %v", p)
	}
	f.Stop()
	if p := f.Progress(start); p != 1 {
		t.Errorf("stopped fade should be opaque, got %v", p)
	}
}

func TestCachedImage(t *testing.T) {
	var img CachedImage
	if img.Cached() {
		t.Errorf("zero value should not hold an image")
	}
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Cache(src)
	if !img.Cached() || img.Op().Size() != image.Pt(4, 4) {
		t.Errorf("expected a cached 4x4 image, got %v", img.Op().Size())
	}
	img.Cache(nil)
	if img.Cached() {
		t.Errorf("expected caching nil to clear the image")
	}
}
