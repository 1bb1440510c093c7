package main

import (
	"image"
	"testing"

	"gioui.org/gpu/headless"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func BenchmarkConversation(b *testing.B) {
	const scale = 2
	sz := image.Point{X: 800 * scale, Y: 600 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		b.Skipf("headless window: %v", err)
	}
	src, err := NewThumbnails(64)
	if err != nil {
		b.Fatal(err)
	}
	src.Latency = 0
	ui := NewUI(src, Generate(500, 0.2))
	defer ui.Loader.Close()
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
		Queue:       new(router.Router),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gtx.Ops.Reset()
		ui.List.Position.First = i % 500
		ui.Layout(gtx)
		w.Frame(gtx.Ops)
	}
}
