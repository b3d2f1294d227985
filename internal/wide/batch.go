package wide

// BatchState holds 16 canonical pixels for batch processing.
// Uses Structure-of-Arrays (SoA) layout for SIMD-friendly access.
//
// Canonical pixels are packed 0xAARRGGBB words:
//
//	[P0, P1, P2, ..., P15]
//
// and are split per channel:
//
//	SR: [R0, R1, R2, ..., R15]
//	SG: [G0, G1, G2, ..., G15]
//	SB: [B0, B1, B2, ..., B15]
//	SA: [A0, A1, A2, ..., A15]
type BatchState struct {
	SR, SG, SB, SA U16x16 // Source ARGB (16 pixels)
	DR, DG, DB, DA U16x16 // Destination ARGB (16 pixels)
}

func unpack(p []uint32, r, g, b, a *U16x16) {
	p = p[:Lanes]
	for i := 0; i < Lanes; i++ {
		v := p[i]
		a[i] = uint16(v >> 24)
		r[i] = uint16((v >> 16) & 0xff)
		g[i] = uint16((v >> 8) & 0xff)
		b[i] = uint16(v & 0xff)
	}
}

// LoadSrc loads 16 pixels into the source channels.
// src must have at least 16 elements.
func (b *BatchState) LoadSrc(src []uint32) {
	unpack(src, &b.SR, &b.SG, &b.SB, &b.SA)
}

// SplatSrc fills every source lane with one pixel.
func (b *BatchState) SplatSrc(color uint32) {
	b.SA = SplatU16(uint16(color >> 24))
	b.SR = SplatU16(uint16((color >> 16) & 0xff))
	b.SG = SplatU16(uint16((color >> 8) & 0xff))
	b.SB = SplatU16(uint16(color & 0xff))
}

// LoadDst loads 16 pixels into the destination channels.
// dst must have at least 16 elements.
func (b *BatchState) LoadDst(dst []uint32) {
	unpack(dst, &b.DR, &b.DG, &b.DB, &b.DA)
}

// StoreDst packs the destination channels back into 16 pixels.
// Channel values are truncated to 8 bits.
func (b *BatchState) StoreDst(dst []uint32) {
	dst = dst[:Lanes]
	for i := 0; i < Lanes; i++ {
		dst[i] = uint32(b.DA[i]&0xff)<<24 |
			uint32(b.DR[i]&0xff)<<16 |
			uint32(b.DG[i]&0xff)<<8 |
			uint32(b.DB[i]&0xff)
	}
}
