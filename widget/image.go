package widget

import (
	"image"

	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation.
type CachedImage struct {
	op  paint.ImageOp
	src image.Image
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache src if it differs from the cached source. A nil src clears the cache,
// which lets a recycled view drop the thumbnail of its previous row.
//
// If src implements ToNRGBA, the *image.NRGBA is used to build the image
// operation, since Gio has a fast path for it.
func (img *CachedImage) Cache(src image.Image) {
	if src == img.src {
		return
	}
	img.src = src
	if src == nil {
		img.op = paint.ImageOp{}
		return
	}
	if nrgba, ok := src.(ToNRGBA); ok {
		src = nrgba.ToNRGBA()
	}
	img.op = paint.NewImageOp(src)
}

// Op returns the image operation. It is the zero value while nothing is
// cached.
func (img *CachedImage) Op() paint.ImageOp {
	return img.op
}

// Cached reports whether an image is cached.
func (img *CachedImage) Cached() bool {
	return img.src != nil
}
