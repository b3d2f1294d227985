// Package geom holds the 3x3 transform used to map destination pixels back
// into source space.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D projective transform in row-vector form:
//
//	| M11 M12 M13 |
//	| M21 M22 M23 |
//	| DX  DY  M33 |
//
// A point maps as
//
//	x' = M11*x + M21*y + DX
//	y' = M12*x + M22*y + DY
//	w  = M13*x + M23*y + M33
//
// and the result is (x'/w, y'/w). The matrix is affine when M13 and M23 are
// zero and M33 is one.
type Matrix struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	DX, DY, M33   float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1, M33: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{M11: 1, M22: 1, M33: 1, DX: dx, DY: dy}
}

// Scale returns a scale by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{M11: sx, M22: sy, M33: 1}
}

// Rotate returns a rotation by angle radians.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{M11: cos, M12: sin, M21: -sin, M22: cos, M33: 1}
}

// Multiply returns the transform that applies m first and then o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.DX,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.DY,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33,
		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.DX,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.DY,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33,
		DX:  m.DX*o.M11 + m.DY*o.M21 + m.M33*o.DX,
		DY:  m.DX*o.M12 + m.DY*o.M22 + m.M33*o.DY,
		M33: m.DX*o.M13 + m.DY*o.M23 + m.M33*o.M33,
	}
}

// Map transforms (x, y), dividing by w for projective matrices.
// A point on the vanishing line (w == 0) maps to (x', y') undivided.
func (m Matrix) Map(x, y float64) (float64, float64) {
	fx := m.M11*x + m.M21*y + m.DX
	fy := m.M12*x + m.M22*y + m.DY
	if m.IsAffine() {
		return fx, fy
	}
	w := m.M13*x + m.M23*y + m.M33
	if w == 0 {
		return fx, fy
	}
	return fx / w, fy / w
}

func (m Matrix) determinant() float64 {
	return m.M11*(m.M33*m.M22-m.DY*m.M23) -
		m.M21*(m.M33*m.M12-m.DY*m.M13) +
		m.DX*(m.M23*m.M12-m.M22*m.M13)
}

// Invert returns the inverse transform. ok is false, and the identity is
// returned, when m is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	switch m.Type() {
	case TxNone:
		return Identity(), true
	case TxTranslate:
		return Translate(-m.DX, -m.DY), true
	case TxScale:
		if fuzzyZero(m.M11) || fuzzyZero(m.M22) {
			return Identity(), false
		}
		inv = Scale(1/m.M11, 1/m.M22)
		inv.DX = -m.DX * inv.M11
		inv.DY = -m.DY * inv.M22
		return inv, true
	}

	det := m.determinant()
	if fuzzyZero(det) {
		return Identity(), false
	}
	// Adjugate divided by the determinant.
	return Matrix{
		M11: (m.M22*m.M33 - m.M23*m.DY) / det,
		M12: (m.M13*m.DY - m.M12*m.M33) / det,
		M13: (m.M12*m.M23 - m.M13*m.M22) / det,
		M21: (m.M23*m.DX - m.M21*m.M33) / det,
		M22: (m.M11*m.M33 - m.M13*m.DX) / det,
		M23: (m.M13*m.M21 - m.M11*m.M23) / det,
		DX:  (m.M21*m.DY - m.M22*m.DX) / det,
		DY:  (m.M12*m.DX - m.M11*m.DY) / det,
		M33: (m.M11*m.M22 - m.M12*m.M21) / det,
	}, true
}

// IsAffine reports whether m has no projective component.
func (m Matrix) IsAffine() bool {
	return m.M13 == 0 && m.M23 == 0 && m.M33 == 1
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// FastMatrix reports whether m can be stepped in 16.16 fixed point without
// overflow: affine, with bounded scale and translation.
func (m Matrix) FastMatrix() bool {
	return m.M13 == 0 && m.M23 == 0 &&
		m.M11*m.M11+m.M21*m.M21 < 1e4 &&
		m.M12*m.M12+m.M22*m.M22 < 1e4 &&
		math.Abs(m.DX) < 1e4 &&
		math.Abs(m.DY) < 1e4
}

// SampleInverse returns the destination-to-source transform for a paint
// transform m. A 1/65536 pre-translation makes fixed-point stepping round
// toward the pixel center consistently.
func SampleInverse(m Matrix) (Matrix, bool) {
	return Translate(1.0/65536, 1.0/65536).Multiply(m).Invert()
}

// Aff3 returns m as an affine matrix in golang.org/x/image column-vector
// order. The projective terms are dropped.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.M11, m.M21, m.DX,
		m.M12, m.M22, m.DY,
	}
}

// FromAff3 converts an x/image affine matrix.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		M11: a[0], M21: a[1], DX: a[2],
		M12: a[3], M22: a[4], DY: a[5],
		M33: 1,
	}
}
