package blend

// Raster operations combine source and destination bitwise and force an
// opaque alpha byte. They target opaque framebuffers and ignore constant
// alpha; ClearDestination and SetDestination are the exception, being
// solid SourceOver fills of black and white.

const opaque = 0xff000000

func solidSourceOrDestination(dst []uint32, color, _ uint32) {
	for i := range dst {
		dst[i] |= color
	}
}

func compSourceOrDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] |= src[i]
	}
}

func solidSourceAndDestination(dst []uint32, color, _ uint32) {
	color |= opaque
	for i := range dst {
		dst[i] &= color
	}
}

func compSourceAndDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = src[i]&d | opaque
	}
}

func solidSourceXorDestination(dst []uint32, color, _ uint32) {
	color &^= opaque
	for i := range dst {
		dst[i] ^= color
	}
}

func compSourceXorDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = src[i] ^ d | opaque
	}
}

func solidNotSourceAndNotDestination(dst []uint32, color, _ uint32) {
	color = ^color
	for i, d := range dst {
		dst[i] = color&^d | opaque
	}
}

func compNotSourceAndNotDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = ^src[i]&^d | opaque
	}
}

func solidNotSourceOrNotDestination(dst []uint32, color, _ uint32) {
	color = ^color | opaque
	for i, d := range dst {
		dst[i] = color | ^d
	}
}

func compNotSourceOrNotDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = ^src[i] | ^d | opaque
	}
}

func solidNotSourceXorDestination(dst []uint32, color, _ uint32) {
	color = ^color &^ opaque
	for i, d := range dst {
		dst[i] = color ^ d
	}
}

func compNotSourceXorDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = ^src[i] ^ d | opaque
	}
}

func solidNotSource(dst []uint32, color, _ uint32) {
	fill(dst, ^color|opaque)
}

func compNotSource(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, s := range src {
		dst[i] = ^s | opaque
	}
}

func solidNotSourceAndDestination(dst []uint32, color, _ uint32) {
	color = ^color | opaque
	for i := range dst {
		dst[i] &= color
	}
}

func compNotSourceAndDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = ^src[i]&d | opaque
	}
}

func solidSourceAndNotDestination(dst []uint32, color, _ uint32) {
	for i, d := range dst {
		dst[i] = color&^d | opaque
	}
}

func compSourceAndNotDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = src[i]&^d | opaque
	}
}

func solidNotSourceOrDestination(dst []uint32, color, _ uint32) {
	color = ^color | opaque
	for i := range dst {
		dst[i] |= color
	}
}

func compNotSourceOrDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = ^src[i] | d | opaque
	}
}

func solidSourceOrNotDestination(dst []uint32, color, _ uint32) {
	for i, d := range dst {
		dst[i] = color | ^d | opaque
	}
}

func compSourceOrNotDestination(dst, src []uint32, _ uint32) {
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = src[i] | ^d | opaque
	}
}

func solidClearDestination(dst []uint32, _, ca uint32) {
	solidSourceOver(dst, 0xff000000, ca)
}

func compClearDestination(dst, _ []uint32, ca uint32) {
	solidSourceOver(dst, 0xff000000, ca)
}

func solidSetDestination(dst []uint32, _, ca uint32) {
	solidSourceOver(dst, 0xffffffff, ca)
}

func compSetDestination(dst, _ []uint32, ca uint32) {
	solidSourceOver(dst, 0xffffffff, ca)
}

func solidNotDestination(dst []uint32, _, _ uint32) {
	solidSourceXorDestination(dst, 0x00ffffff, 0)
}

func compNotDestination(dst, _ []uint32, _ uint32) {
	solidSourceXorDestination(dst, 0x00ffffff, 0)
}
