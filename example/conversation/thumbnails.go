package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxThumbnail bounds the size of rendered thumbnails.
var maxThumbnail = image.Pt(480, 320)

// Thumbnails renders a gradient thumbnail per message, after a simulated
// network delay. Rendered thumbnails are kept in a bounded cache.
type Thumbnails struct {
	// Latency is the longest simulated delay.
	Latency time.Duration
	cache   *lru.Cache[uuid.UUID, image.Image]
}

// NewThumbnails allocates a source caching up to size thumbnails.
func NewThumbnails(size int) (*Thumbnails, error) {
	cache, err := lru.New[uuid.UUID, image.Image](size)
	if err != nil {
		return nil, fmt.Errorf("allocating thumbnail cache: %w", err)
	}
	return &Thumbnails{Latency: 500 * time.Millisecond, cache: cache}, nil
}

// Thumbnail returns the thumbnail of the message with the given id. It
// returns early with ctx's error once ctx is done.
func (t *Thumbnails) Thumbnail(ctx context.Context, id uuid.UUID, size image.Point) (image.Image, error) {
	if img, ok := t.cache.Get(id); ok {
		return img, nil
	}
	if t.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(rand.Int63n(int64(t.Latency)))):
		}
	}
	img := gradient(id, scale(size, maxThumbnail))
	t.cache.Add(id, img)
	return img, nil
}

// Len returns the number of cached thumbnails.
func (t *Thumbnails) Len() int {
	return t.cache.Len()
}

// gradient renders a diagonal gradient between two colors derived from id.
func gradient(id uuid.UUID, size image.Point) image.Image {
	var (
		from = colorful.Hsv(float64(id[0])/255*360, 0.6, 0.9)
		to   = colorful.Hsv(float64(id[1])/255*360, 0.8, 0.5)
		img  = image.NewNRGBA(image.Rectangle{Max: size})
		span = float64(size.X + size.Y)
	)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r, g, b := from.BlendLab(to, float64(x+y)/span).Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// scale size down to fit within max, keeping its aspect ratio. Unknown sizes
// become max.
func scale(size, max image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return max
	}
	if size.X > max.X {
		size = image.Pt(max.X, size.Y*max.X/size.X)
	}
	if size.Y > max.Y {
		size = image.Pt(size.X*max.Y/size.Y, max.Y)
	}
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	return size
}
