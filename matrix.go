package drawhelper

import (
	"golang.org/x/image/math/f64"

	"github.com/gogpu/drawhelper/internal/geom"
)

// Matrix is a 2D projective transform in row-vector form:
//
//	| M11 M12 M13 |
//	| M21 M22 M23 |
//	| DX  DY  M33 |
//
// A point (x, y) maps to ((M11*x + M21*y + DX)/w, (M12*x + M22*y + DY)/w)
// with w = M13*x + M23*y + M33.
type Matrix = geom.Matrix

// Identity returns the identity transformation matrix.
func Identity() Matrix { return geom.Identity() }

// Translate creates a translation matrix.
func Translate(dx, dy float64) Matrix { return geom.Translate(dx, dy) }

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix { return geom.Scale(sx, sy) }

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix { return geom.Rotate(angle) }

// Shear creates a shear matrix.
func Shear(sh, sv float64) Matrix {
	return Matrix{M11: 1, M12: sv, M21: sh, M22: 1, M33: 1}
}

// MatrixFromAff3 converts a golang.org/x/image affine matrix, as used by
// golang.org/x/image/draw transformers.
func MatrixFromAff3(a f64.Aff3) Matrix { return geom.FromAff3(a) }
