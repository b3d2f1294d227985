// Package gradient evaluates linear, radial and conical gradients into runs
// of canonical pixels through a precomputed colour table.
package gradient

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// TableSize is the number of entries in a colour table.
const TableSize = 1024

// Stop is a colour at a position along the gradient. Color is straight
// (not premultiplied) ARGB.
type Stop struct {
	Pos   float64
	Color uint32
}

// DefaultStops is used when a gradient has no stops: black to white.
var DefaultStops = []Stop{{0, 0xff000000}, {1, 0xffffffff}}

// Table maps quantised gradient positions to premultiplied colours.
// Entry i holds the colour at position i/(TableSize-1).
type Table struct {
	colors [TableSize]uint32
	alpha  bool
}

// NewTable builds the colour table for stops, scaling every stop alpha by
// opacity. Stops are sorted by position; positions are clamped to [0, 1].
func NewTable(stops []Stop, opacity float64) *Table {
	if len(stops) == 0 {
		stops = DefaultStops
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Pos = clamp01(sorted[i].Pos)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})

	opacity = clamp01(opacity)
	colors := make([]uint32, len(sorted))
	t := &Table{}
	for i, s := range sorted {
		c := withOpacity(s.Color, opacity)
		if c>>24 != 0xff {
			t.alpha = true
		}
		colors[i] = pixel.Premultiply(c)
	}

	const incr = 1.0 / (TableSize - 1)
	pos := 0
	for ; pos < TableSize && float64(pos)*incr <= sorted[0].Pos; pos++ {
		t.colors[pos] = colors[0]
	}
	for i := 0; i+1 < len(sorted) && pos < TableSize; i++ {
		lo, hi := sorted[i].Pos, sorted[i+1].Pos
		if hi <= lo {
			continue
		}
		delta := 1 / (hi - lo)
		for ; pos < TableSize; pos++ {
			fpos := float64(pos) * incr
			if fpos >= hi {
				break
			}
			dist := uint32(256 * (fpos - lo) * delta)
			t.colors[pos] = blend.Interpolate256(colors[i], 256-dist, colors[i+1], dist)
		}
	}
	last := colors[len(colors)-1]
	for ; pos < TableSize; pos++ {
		t.colors[pos] = last
	}
	t.colors[TableSize-1] = last
	return t
}

func withOpacity(c uint32, opacity float64) uint32 {
	if opacity >= 1 {
		return c
	}
	a := uint32(float64(c>>24)*opacity + 0.5)
	return a<<24 | c&0x00ffffff
}

// HasAlpha reports whether any entry is not fully opaque.
func (t *Table) HasAlpha() bool { return t.alpha }

// At returns entry i.
func (t *Table) At(i int) uint32 { return t.colors[i] }

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Key identifies the table NewTable(stops, opacity) would build. Equal
// keys build identical tables.
func Key(stops []Stop, opacity float64) string {
	b := make([]byte, 0, 8+12*len(stops))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(opacity))
	for _, s := range stops {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(s.Pos))
		b = binary.LittleEndian.AppendUint32(b, s.Color)
	}
	return string(b)
}
