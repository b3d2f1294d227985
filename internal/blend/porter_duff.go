package blend

// Porter-Duff operators in solid and array form. With constant alpha ca and
// its inverse cia = 255 - ca, each partial-coverage variant computes
// dest = result*ca + d*cia, folded into the operator where that saves a
// multiply.

// Clear: result = 0, dest = d*cia.
func clearPixels(dst []uint32, ca uint32) {
	if ca == 255 {
		clear(dst)
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = ByteMul(d, cia)
	}
}

func solidClear(dst []uint32, _, ca uint32) {
	clearPixels(dst, ca)
}

func compClear(dst, _ []uint32, ca uint32) {
	clearPixels(dst, ca)
}

// Source: dest = s*ca + d*cia.
func solidSource(dst []uint32, color, ca uint32) {
	if ca == 255 {
		fill(dst, color)
		return
	}
	cia := 255 - ca
	color = ByteMul(color, ca)
	for i, d := range dst {
		dst[i] = color + ByteMul(d, cia)
	}
}

func compSource(dst, src []uint32, ca uint32) {
	if ca == 255 {
		copy(dst, src)
		return
	}
	src = src[:len(dst)]
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = Interpolate255(src[i], ca, d, cia)
	}
}

func solidDestination([]uint32, uint32, uint32) {}

func compDestination(_, _ []uint32, _ uint32) {}

// SourceOver: dest = s*ca + d*(1 - sa*ca).
func solidSourceOver(dst []uint32, color, ca uint32) {
	if ca&alpha(color) == 255 {
		fill(dst, color)
		return
	}
	if ca != 255 {
		color = ByteMul(color, ca)
	}
	sia := invAlpha(color)
	for i, d := range dst {
		dst[i] = color + ByteMul(d, sia)
	}
}

func compSourceOver(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, s := range src {
			if s >= 0xff000000 {
				dst[i] = s
			} else if s != 0 {
				dst[i] = s + ByteMul(dst[i], invAlpha(s))
			}
		}
		return
	}
	for i, s := range src {
		s = ByteMul(s, ca)
		dst[i] = s + ByteMul(dst[i], invAlpha(s))
	}
}

// DestinationOver: dest = d + s*dia*ca.
func solidDestinationOver(dst []uint32, color, ca uint32) {
	if ca != 255 {
		color = ByteMul(color, ca)
	}
	for i, d := range dst {
		dst[i] = d + ByteMul(color, invAlpha(d))
	}
}

func compDestinationOver(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		s := src[i]
		if ca != 255 {
			s = ByteMul(s, ca)
		}
		dst[i] = d + ByteMul(s, invAlpha(d))
	}
}

// SourceIn: dest = s*da*ca + d*cia.
func solidSourceIn(dst []uint32, color, ca uint32) {
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(color, alpha(d))
		}
		return
	}
	color = ByteMul(color, ca)
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = Interpolate255(color, alpha(d), d, cia)
	}
}

func compSourceIn(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(src[i], alpha(d))
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		s := ByteMul(src[i], ca)
		dst[i] = Interpolate255(s, alpha(d), d, cia)
	}
}

// DestinationIn: dest = d*(sa*ca + cia).
func solidDestinationIn(dst []uint32, color, ca uint32) {
	a := alpha(color)
	if ca != 255 {
		a = ByteMul(a, ca) + 255 - ca
	}
	for i, d := range dst {
		dst[i] = ByteMul(d, a)
	}
}

func compDestinationIn(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(d, alpha(src[i]))
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		a := ByteMul(alpha(src[i]), ca) + cia
		dst[i] = ByteMul(d, a)
	}
}

// SourceOut: dest = s*dia*ca + d*cia.
func solidSourceOut(dst []uint32, color, ca uint32) {
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(color, invAlpha(d))
		}
		return
	}
	color = ByteMul(color, ca)
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = Interpolate255(color, invAlpha(d), d, cia)
	}
}

func compSourceOut(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(src[i], invAlpha(d))
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		s := ByteMul(src[i], ca)
		dst[i] = Interpolate255(s, invAlpha(d), d, cia)
	}
}

// DestinationOut: dest = d*(sia*ca + cia).
func solidDestinationOut(dst []uint32, color, ca uint32) {
	a := invAlpha(color)
	if ca != 255 {
		a = ByteMul(a, ca) + 255 - ca
	}
	for i, d := range dst {
		dst[i] = ByteMul(d, a)
	}
}

func compDestinationOut(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			dst[i] = ByteMul(d, invAlpha(src[i]))
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		sia := ByteMul(invAlpha(src[i]), ca) + cia
		dst[i] = ByteMul(d, sia)
	}
}

// SourceAtop: dest = s*ca*da + d*(1 - sa*ca).
func solidSourceAtop(dst []uint32, color, ca uint32) {
	if ca != 255 {
		color = ByteMul(color, ca)
	}
	sia := invAlpha(color)
	for i, d := range dst {
		dst[i] = Interpolate255(color, alpha(d), d, sia)
	}
}

func compSourceAtop(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		s := src[i]
		if ca != 255 {
			s = ByteMul(s, ca)
		}
		dst[i] = Interpolate255(s, alpha(d), d, invAlpha(s))
	}
}

// DestinationAtop: dest = s*ca*dia + d*(sa*ca + cia).
func solidDestinationAtop(dst []uint32, color, ca uint32) {
	a := alpha(color)
	if ca != 255 {
		color = ByteMul(color, ca)
		a = alpha(color) + 255 - ca
	}
	for i, d := range dst {
		dst[i] = Interpolate255(d, a, color, invAlpha(d))
	}
}

func compDestinationAtop(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			s := src[i]
			dst[i] = Interpolate255(d, alpha(s), s, invAlpha(d))
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		s := ByteMul(src[i], ca)
		dst[i] = Interpolate255(d, alpha(s)+cia, s, invAlpha(d))
	}
}

// Xor: dest = s*ca*dia + d*(1 - sa*ca).
func solidXor(dst []uint32, color, ca uint32) {
	if ca != 255 {
		color = ByteMul(color, ca)
	}
	sia := invAlpha(color)
	for i, d := range dst {
		dst[i] = Interpolate255(color, invAlpha(d), d, sia)
	}
}

func compXor(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		s := src[i]
		if ca != 255 {
			s = ByteMul(s, ca)
		}
		dst[i] = Interpolate255(s, invAlpha(d), d, invAlpha(s))
	}
}

// plusPixel adds two pixels with per-channel saturation.
func plusPixel(d, s uint32) uint32 {
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		c := (d>>shift)&0xff + (s>>shift)&0xff
		out |= min(c, 255) << shift
	}
	return out
}

// Plus: dest = (s + d)*ca + d*cia.
func solidPlus(dst []uint32, color, ca uint32) {
	if ca == 255 {
		for i, d := range dst {
			dst[i] = plusPixel(d, color)
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = Interpolate255(plusPixel(d, color), ca, d, cia)
	}
}

func compPlus(dst, src []uint32, ca uint32) {
	src = src[:len(dst)]
	if ca == 255 {
		for i, d := range dst {
			dst[i] = plusPixel(d, src[i])
		}
		return
	}
	cia := 255 - ca
	for i, d := range dst {
		dst[i] = Interpolate255(plusPixel(d, src[i]), ca, d, cia)
	}
}
