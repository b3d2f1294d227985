package blend

import "math"

// Separable blend modes on premultiplied channels (W3C Compositing Level 1,
// section 9.1 with the premultiplied forms of section 5.8).
//
// Each mode is a channelOp applied to red, green and blue; alpha is always
// MixAlpha(da, sa). Partial constant alpha interpolates the blended pixel
// toward the destination.

// channelOp blends one premultiplied color channel. d and s are the
// destination and source channel values, da and sa their alphas.
type channelOp func(d, s, da, sa int) int

// multiplyOp: Dca' = Sca*Dca + Sca*(1-Da) + Dca*(1-Sa)
func multiplyOp(d, s, da, sa int) int {
	return Div255(s*d + s*(255-da) + d*(255-sa))
}

// screenOp: Dca' = Sca + Dca - Sca*Dca
func screenOp(d, s, _, _ int) int {
	return 255 - Div255((255-d)*(255-s))
}

// overlayOp is hardLightOp with source and destination swapped.
func overlayOp(d, s, da, sa int) int {
	temp := s*(255-da) + d*(255-sa)
	if 2*d < da {
		return Div255(2*s*d + temp)
	}
	return Div255(sa*da - 2*(da-d)*(sa-s) + temp)
}

// darkenOp: Dca' = min(Sca*Da, Dca*Sa) + Sca*(1-Da) + Dca*(1-Sa)
func darkenOp(d, s, da, sa int) int {
	return Div255(min(s*da, d*sa) + s*(255-da) + d*(255-sa))
}

// lightenOp: Dca' = max(Sca*Da, Dca*Sa) + Sca*(1-Da) + Dca*(1-Sa)
func lightenOp(d, s, da, sa int) int {
	return Div255(max(s*da, d*sa) + s*(255-da) + d*(255-sa))
}

func colorDodgeOp(d, s, da, sa int) int {
	saDa := sa * da
	dSa := d * sa
	sDa := s * da

	temp := s*(255-da) + d*(255-sa)
	if sDa+dSa >= saDa {
		return Div255(saDa + temp)
	}
	return Div255(255*dSa/(255-255*s/sa) + temp)
}

func colorBurnOp(d, s, da, sa int) int {
	sDa := s * da
	dSa := d * sa
	saDa := sa * da

	temp := s*(255-da) + d*(255-sa)
	if s == 0 || sDa+dSa <= saDa {
		return Div255(temp)
	}
	return Div255(sa*(sDa+dSa-saDa)/s + temp)
}

func hardLightOp(d, s, da, sa int) int {
	temp := s*(255-da) + d*(255-sa)
	if 2*s < sa {
		return Div255(2*s*d + temp)
	}
	return Div255(sa*da - 2*(da-d)*(sa-s) + temp)
}

// softLightOp follows the W3C soft-light definition, evaluated on the
// unpremultiplied destination channel in integer arithmetic scaled by 65025.
func softLightOp(d, s, da, sa int) int {
	s2 := s << 1
	dnp := 0
	if da != 0 {
		dnp = 255 * d / da
	}
	temp := (s*(255-da) + d*(255-sa)) * 255

	switch {
	case s2 < sa:
		return (d*(sa*255+(s2-sa)*(255-dnp)) + temp) / 65025
	case 4*d <= da:
		return (d*sa*255 + da*(s2-sa)*((((16*dnp-12*255)*dnp+3*65025)*dnp)/65025) + temp) / 65025
	default:
		return (d*sa*255 + da*(s2-sa)*(int(math.Sqrt(float64(dnp*255)))-dnp) + temp) / 65025
	}
}

// differenceOp: Dca' = Sca + Dca - 2*min(Sca*Da, Dca*Sa)
func differenceOp(d, s, da, sa int) int {
	return s + d - Div255(2*min(s*da, d*sa))
}

// exclusionOp: Dca' = Sca + Dca - 2*Sca*Dca
func exclusionOp(d, s, _, _ int) int {
	return d + s - Div255(2*d*s)
}

func separablePixel(op channelOp, d, s uint32) uint32 {
	da, sa := int(d>>24), int(s>>24)
	r := op(int(d>>16&0xff), int(s>>16&0xff), da, sa)
	g := op(int(d>>8&0xff), int(s>>8&0xff), da, sa)
	b := op(int(d&0xff), int(s&0xff), da, sa)
	return pack(r, g, b, MixAlpha(da, sa))
}

func separableSolid(op channelOp) SolidFunc {
	return func(dst []uint32, color, ca uint32) {
		if ca == 255 {
			for i, d := range dst {
				dst[i] = separablePixel(op, d, color)
			}
			return
		}
		cia := 255 - ca
		for i, d := range dst {
			dst[i] = Interpolate255(separablePixel(op, d, color), ca, d, cia)
		}
	}
}

func separableArray(op channelOp) Func {
	return func(dst, src []uint32, ca uint32) {
		src = src[:len(dst)]
		if ca == 255 {
			for i, d := range dst {
				dst[i] = separablePixel(op, d, src[i])
			}
			return
		}
		cia := 255 - ca
		for i, d := range dst {
			dst[i] = Interpolate255(separablePixel(op, d, src[i]), ca, d, cia)
		}
	}
}
