package drawhelper

// Span is a run of Len pixels on row Y starting at column X, all with the
// same anti-aliasing coverage.
//
// Spans passed to one Blend call must have non-decreasing Y, and spans on
// the same row must not overlap.
type Span struct {
	X, Y     int
	Len      int
	Coverage uint8
}

// FullSpans returns one fully covered span per row of the rectangle
// (x, y, w, h).
func FullSpans(x, y, w, h int) []Span {
	if w <= 0 || h <= 0 {
		return nil
	}
	spans := make([]Span, h)
	for i := range spans {
		spans[i] = Span{X: x, Y: y + i, Len: w, Coverage: 255}
	}
	return spans
}

// allOpaque reports whether every span has full coverage.
func allOpaque(spans []Span) bool {
	for _, s := range spans {
		if s.Coverage != 255 {
			return false
		}
	}
	return true
}
