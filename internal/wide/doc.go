// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// The types here are fixed-size arrays operated on by simple loops, which
// lets the Go compiler emit vector instructions on amd64 and arm64 without
// assembly. They back the accelerated composition kernels; the scalar
// kernels in package blend remain the reference and every wide kernel must
// produce bit-identical output.
//
// # U16x16
//
// Sixteen uint16 lanes. Eight bit channel products (at most 255*255) fit a
// lane, so the byte multiply with rounding can be done without widening.
//
// # BatchState
//
// BatchState holds 16 canonical pixels (premultiplied ARGB words) split
// into Structure-of-Arrays channels:
//
//	var batch wide.BatchState
//	batch.LoadSrc(src[:16])
//	batch.LoadDst(dst[:16])
//	// operate on batch.SR, batch.DA, ...
//	batch.StoreDst(dst[:16])
package wide
