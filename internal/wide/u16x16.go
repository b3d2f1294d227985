package wide

// Lanes is the number of elements in a U16x16.
const Lanes = 16

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type U16x16 [Lanes]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v U16x16) Sub(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div255 divides each element by 255, rounding to nearest.
// With t = x + 0x80 the quotient is (t + t>>8) >> 8, exact for x in
// [0, 255*255].
func (v U16x16) Div255() U16x16 {
	var result U16x16
	for i := range v {
		t := v[i] + 0x80
		result[i] = (t + t>>8) >> 8
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// MulDiv255 performs round(v * other / 255) for each element.
// Both operands must be at most 255.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := v[i]*other[i] + 0x80
		result[i] = (t + t>>8) >> 8
	}
	return result
}

// Lerp255 computes round((v*a + other*b) / 255) per element.
// The caller guarantees v*a + other*b <= 255*255.
func (v U16x16) Lerp255(a, other, b U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := v[i]*a[i] + other[i]*b[i] + 0x80
		result[i] = (t + t>>8) >> 8
	}
	return result
}

// MixAlpha returns the union of two coverages per element:
// 255 - ((255-v) * (255-other) >> 8).
func (v U16x16) MixAlpha(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - ((255-v[i])*(255-other[i]))>>8
	}
	return result
}

// Clamp clamps each element to [0, maxVal].
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var result U16x16
	for i := range v {
		if v[i] > maxVal {
			result[i] = maxVal
		} else {
			result[i] = v[i]
		}
	}
	return result
}
