package widget

import (
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// FadeDuration is how long an animated configuration takes to fade in.
const FadeDuration = 250 * time.Millisecond

// Fade animates a view's content in after it was configured.
type Fade struct {
	start   time.Time
	pending bool
	// Duration of the animation. Defaults to FadeDuration.
	Duration time.Duration
}

// Animate starts the animation on the next frame.
func (f *Fade) Animate() {
	f.pending = true
}

// Start the animation at now.
func (f *Fade) Start(now time.Time) {
	f.start = now
	f.pending = false
}

// Stop the animation, leaving the content fully opaque.
func (f *Fade) Stop() {
	f.start = time.Time{}
	f.pending = false
}

// Progress returns the opacity of the content in [0,1] at now.
func (f *Fade) Progress(now time.Time) float32 {
	if f.pending {
		f.Start(now)
	}
	if f.start.IsZero() {
		return 1
	}
	d := f.Duration
	if d <= 0 {
		d = FadeDuration
	}
	elapsed := now.Sub(f.start)
	if elapsed >= d {
		f.start = time.Time{}
		return 1
	}
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed) / float32(d)
}

// Apply scales the alpha of c by the animation progress and requests another
// frame while the animation runs.
func (f *Fade) Apply(gtx layout.Context, c color.NRGBA) color.NRGBA {
	p := f.Progress(gtx.Now)
	if p < 1 {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	c.A = uint8(float32(c.A) * p)
	return c
}
