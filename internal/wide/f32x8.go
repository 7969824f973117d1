package wide

// F32x8 represents 8 float32 values for SIMD-style operations.
// In the convolution loops lanes 0-3 hold one RGBA pixel and lanes 4-7 the
// next one.
type F32x8 [8]float32

// SplatF32 creates F32x8 with all elements set to n.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Join packs two F32x4 values into one F32x8 (lo in lanes 0-3).
func Join(lo, hi F32x4) F32x8 {
	return F32x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// Lo returns lanes 0-3.
func (v F32x8) Lo() F32x4 {
	return F32x4{v[0], v[1], v[2], v[3]}
}

// Hi returns lanes 4-7.
func (v F32x8) Hi() F32x4 {
	return F32x4{v[4], v[5], v[6], v[7]}
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd returns v*m + a per lane.
func (v F32x8) MulAdd(m, a F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}
