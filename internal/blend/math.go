package blend

// Fast math for alpha blending on packed canonical pixels.
//
// The packed helpers process two channels per 32-bit multiply: red and blue
// in the 0x00ff00ff lanes, alpha and green in the 0xff00ff00 lanes. Each
// lane holds at most 255*255 + 0x80 + 0xfe, so lanes never carry into each
// other.
//
// Division by 255 with rounding uses t = x + 0x80, (t + t>>8) >> 8, which
// is exact for every x in [0, 255*255].
//
// Reference: Jim Blinn, "Three Wrongs Make a Right" (1995).

// Div255 returns round(x / 255) for x in [0, 255*255].
func Div255(x int) int {
	t := x + 0x80
	return (t + t>>8) >> 8
}

// ByteMul multiplies every channel of x by a/255, rounding to nearest.
// a must be at most 255.
func ByteMul(x, a uint32) uint32 {
	t := (x&0xff00ff)*a + 0x800080
	t = ((t + ((t >> 8) & 0xff00ff)) >> 8) & 0xff00ff

	x = ((x>>8)&0xff00ff)*a + 0x800080
	x = (x + ((x >> 8) & 0xff00ff)) & 0xff00ff00
	return x | t
}

// Interpolate255 returns round((x*a + y*b) / 255) per channel. The caller
// guarantees x*a + y*b <= 255*255 for every channel, which holds whenever
// a + b <= 255.
func Interpolate255(x, a, y, b uint32) uint32 {
	t := (x&0xff00ff)*a + (y&0xff00ff)*b + 0x800080
	t = ((t + ((t >> 8) & 0xff00ff)) >> 8) & 0xff00ff

	x = ((x>>8)&0xff00ff)*a + ((y>>8)&0xff00ff)*b + 0x800080
	x = (x + ((x >> 8) & 0xff00ff)) & 0xff00ff00
	return x | t
}

// Interpolate256 returns (x*a + y*b) >> 8 per channel, for a + b == 256.
func Interpolate256(x, a, y, b uint32) uint32 {
	t := ((x&0xff00ff)*a + (y&0xff00ff)*b) >> 8
	t &= 0xff00ff

	x = ((x>>8)&0xff00ff)*a + ((y>>8)&0xff00ff)*b
	x &= 0xff00ff00
	return x | t
}

// MixAlpha returns the union of two coverages,
// 255 - ((255-sa) * (255-da) >> 8).
func MixAlpha(da, sa int) int {
	return 255 - ((255-sa)*(255-da))>>8
}

// pack assembles a pixel from channel values, keeping the low byte of each.
func pack(r, g, b, a int) uint32 {
	return uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff)
}

func alpha(p uint32) uint32 {
	return p >> 24
}

// invAlpha returns 255 - alpha(p).
func invAlpha(p uint32) uint32 {
	return ^p >> 24
}

func fill(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}
