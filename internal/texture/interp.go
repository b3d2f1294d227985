package texture

import "github.com/gogpu/drawhelper/internal/blend"

// Interpolate4Pixels blends a 2x2 block of canonical pixels. distx and
// disty are the fractional position inside the block in [0, 256].
func Interpolate4Pixels(tl, tr, bl, br, distx, disty uint32) uint32 {
	idistx := 256 - distx
	idisty := 256 - disty
	top := blend.Interpolate256(tl, idistx, tr, distx)
	bottom := blend.Interpolate256(bl, idistx, br, distx)
	return blend.Interpolate256(top, idisty, bottom, disty)
}

// Interpolate4Pixels16 is Interpolate4Pixels with 4-bit weights in
// [0, 16]. All four taps are weighted at once, so it rounds only once.
func Interpolate4Pixels16(tl, tr, bl, br, distx, disty uint32) uint32 {
	distxy := distx * disty
	wtl := 16*16 - 16*distx - 16*disty + distxy
	wtr := 16*distx - distxy
	wbl := 16*disty - distxy
	wbr := distxy

	rb := (tl&0x00ff00ff)*wtl + (tr&0x00ff00ff)*wtr +
		(bl&0x00ff00ff)*wbl + (br&0x00ff00ff)*wbr
	ag := (tl>>8&0x00ff00ff)*wtl + (tr>>8&0x00ff00ff)*wtr +
		(bl>>8&0x00ff00ff)*wbl + (br>>8&0x00ff00ff)*wbr
	return (rb>>8)&0x00ff00ff | ag&0xff00ff00
}
