// Package drawhelper composes scanline spans onto raster surfaces in many
// pixel formats.
//
// # Overview
//
// drawhelper is the pixel engine underneath a 2D rasterizer. The rasterizer
// produces spans (runs of pixels on one row with an anti-aliasing coverage)
// and drawhelper fills them with a paint: a solid colour, a linear, radial
// or conical gradient, or a texture image under an arbitrary projective
// transform, composed with any of the Porter-Duff, separable blend or raster
// operation modes.
//
// # Quick Start
//
//	import "github.com/gogpu/drawhelper"
//
//	dst, _ := drawhelper.NewSurface(256, 256, drawhelper.FormatRGB16)
//	paint := drawhelper.Solid(0x80ff0000)
//	sd, _ := drawhelper.NewSpanData(dst, paint, drawhelper.WithMode(drawhelper.SourceOver))
//	sd.Blend([]drawhelper.Span{{X: 10, Y: 10, Len: 100, Coverage: 255}})
//
// # Canonical Pixel
//
// Every fetch produces canonical pixels: 32-bit premultiplied ARGB with
// alpha in the most significant byte. Conversions to and from the
// surface's own format happen once per chunk of up to 2048 pixels.
//
// # Dispatch
//
// A [Tables] value holds every function the span loop may call. The
// default tables are built once per process from the detected CPU
// features; [NewTables] builds independent scalar or wide configurations
// for side-by-side use.
//
// # Concurrency
//
// Tables are immutable and may be shared. A SpanData and its target
// surface belong to one goroutine at a time; different goroutines may draw
// to different surfaces, or to disjoint rows of one surface, concurrently.
package drawhelper
