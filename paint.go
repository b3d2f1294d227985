package drawhelper

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/drawhelper/internal/gradient"
	"github.com/gogpu/drawhelper/internal/pixel"
	"github.com/gogpu/drawhelper/internal/texture"
)

// ErrNoImage is returned when a texture paint has no image.
var ErrNoImage = errors.New("drawhelper: texture has no image")

// Paint is the source of a fill. Implementations are Solid,
// *LinearGradient, *RadialGradient, *ConicalGradient and *Texture.
type Paint interface {
	resolve(c *config) (source, error)
}

type sourceKind uint8

const (
	sourceSolid sourceKind = iota
	sourceGradient
	sourceTexture
)

// source is a paint resolved for one SpanData.
type source struct {
	kind     sourceKind
	color    uint32 // canonical, for sourceSolid
	gradient *gradient.Data
	texture  *texture.Data

	// opaque is true when every fetched pixel has full alpha.
	opaque bool
}

// Solid is a straight (not premultiplied) ARGB colour.
type Solid uint32

func (s Solid) resolve(*config) (source, error) {
	return source{
		kind:   sourceSolid,
		color:  pixel.Premultiply(uint32(s)),
		opaque: s>>24 == 0xff,
	}, nil
}

// Texture paints an image. Source selects the part of the image that
// bilinear filtering may read; the zero rectangle selects all of it.
type Texture struct {
	Image  *Surface
	Source image.Rectangle
}

func (t *Texture) resolve(c *config) (source, error) {
	if t == nil || t.Image == nil {
		return source{}, ErrNoImage
	}
	d, err := texture.NewData(t.Image.buf, c.constAlpha, c.tiled, t.Source)
	if err != nil {
		return source{}, fmt.Errorf("drawhelper: texture: %w", err)
	}
	return source{kind: sourceTexture, texture: d, opaque: !d.HasAlpha}, nil
}
