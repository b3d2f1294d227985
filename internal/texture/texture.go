// Package texture fetches runs of canonical source pixels from an image,
// either directly or through an inverse transform with nearest or bilinear
// sampling.
package texture

import (
	"errors"
	"image"

	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// BlendType selects how destination pixels map to texture pixels.
type BlendType uint8

const (
	Untransformed BlendType = iota
	Tiled
	Transformed
	TransformedTiled
	TransformedBilinear
	TransformedBilinearTiled

	blendTypeCount
)

var blendTypeNames = [blendTypeCount]string{
	"Untransformed", "Tiled", "Transformed", "TransformedTiled",
	"TransformedBilinear", "TransformedBilinearTiled",
}

func (t BlendType) String() string {
	if t < blendTypeCount {
		return blendTypeNames[t]
	}
	return "Unknown"
}

// IsTiled reports whether sampling wraps around the image edges.
func (t BlendType) IsTiled() bool {
	return t == Tiled || t == TransformedTiled || t == TransformedBilinearTiled
}

// TypeFor picks the blend type for an inverse transform of type tx.
// Translations never need resampling.
func TypeFor(tx geom.TxType, bilinear, tiled bool) BlendType {
	var t BlendType
	switch {
	case tx <= geom.TxTranslate:
		t = Untransformed
	case bilinear:
		t = TransformedBilinear
	default:
		t = Transformed
	}
	if tiled {
		t++
	}
	return t
}

// Errors returned by NewData.
var (
	ErrNoImage     = errors.New("texture: no image")
	ErrConstAlpha  = errors.New("texture: constant alpha out of range")
	ErrEmptySource = errors.New("texture: empty source rectangle")
)

// Data describes a texture being painted.
type Data struct {
	Image *pixel.Buffer

	// Source rectangle: X1, Y1 inclusive, X2, Y2 exclusive. Bilinear
	// sampling clamps to it; other samplers use the whole image.
	X1, Y1, X2, Y2 int

	Tiled bool

	// ConstAlpha is the paint opacity in [0, 256].
	ConstAlpha int

	// HasAlpha is false only when every texel is opaque and ConstAlpha is
	// 256.
	HasAlpha bool
}

// NewData describes img painted with constAlpha. A zero src selects the
// whole image; otherwise src is clipped to it.
func NewData(img *pixel.Buffer, constAlpha int, tiled bool, src image.Rectangle) (*Data, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if constAlpha < 0 || constAlpha > 256 {
		return nil, ErrConstAlpha
	}
	bounds := image.Rect(0, 0, img.Width(), img.Height())
	if src.Empty() {
		src = bounds
	} else if src = src.Intersect(bounds); src.Empty() {
		return nil, ErrEmptySource
	}
	return &Data{
		Image:      img,
		X1:         src.Min.X,
		Y1:         src.Min.Y,
		X2:         src.Max.X,
		Y2:         src.Max.Y,
		Tiled:      tiled,
		ConstAlpha: constAlpha,
		HasAlpha:   imageHasAlpha(img) || constAlpha != 256,
	}, nil
}

// imageHasAlpha reports whether any pixel of img may fetch with alpha
// below 0xff. Indices past the end of a short colour table fetch
// transparent black.
func imageHasAlpha(img *pixel.Buffer) bool {
	f := img.Format()
	if !f.IsIndexed() {
		return f.HasAlphaChannel()
	}
	clut := img.ColorTable()
	if len(clut) < 1<<f.BPP().Bits() {
		return true
	}
	for _, c := range clut {
		if c>>24 != 0xff {
			return true
		}
	}
	return false
}

// Width returns the image width.
func (d *Data) Width() int { return d.Image.Width() }

// Height returns the image height.
func (d *Data) Height() int { return d.Image.Height() }

func (d *Data) scanLine(y int) []byte {
	return d.Image.ScanLine(y)
}

// toCanonical converts raw pixels of the texture format in place.
func (d *Data) toCanonical(buf []uint32) []uint32 {
	return pixel.ToARGB32PM(buf, buf, d.Image.Format(), d.Image.ColorTable())
}

// Fetcher fills buf with length canonical pixels for the destination run
// starting at (x, y). m is the destination-to-texture transform. The
// result is either buf[:length] or a read-only view of the image.
type Fetcher func(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32

var fetchers [blendTypeCount][pixel.FormatCount]Fetcher

func init() {
	for f := pixel.Format(1); int(f) < pixel.FormatCount; f++ {
		fetchers[Untransformed][f] = fetchUntransformed
		fetchers[Tiled][f] = fetchTiled
		fetchers[Transformed][f] = fetchTransformed
		fetchers[TransformedTiled][f] = fetchTransformedTiled
		fetchers[TransformedBilinear][f] = fetchBilinear
		fetchers[TransformedBilinearTiled][f] = fetchBilinearTiled
	}
	fetchers[Untransformed][pixel.FormatARGB32Premultiplied] = fetchUntransformedARGB32PM
	fetchers[Untransformed][pixel.FormatRGB16] = fetchUntransformedRGB16
	fetchers[Transformed][pixel.FormatARGB32Premultiplied] = fetchTransformedARGB32PM
	fetchers[TransformedTiled][pixel.FormatARGB32Premultiplied] = fetchTransformedTiledARGB32PM
}

// FetchFunc returns the fetcher for textures of format f sampled with bt,
// or nil when f cannot be a texture.
func FetchFunc(bt BlendType, f pixel.Format) Fetcher {
	if bt >= blendTypeCount || int(f) >= pixel.FormatCount {
		return nil
	}
	return fetchers[bt][f]
}
