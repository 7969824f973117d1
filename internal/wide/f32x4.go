package wide

import "github.com/chewxy/math32"

// F32x4 represents 4 float32 values for SIMD-style operations.
type F32x4 [4]float32

// Splat4 creates F32x4 with all lanes set to n.
func Splat4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// MulScalar multiplies every lane by s.
func (v F32x4) MulScalar(s float32) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// Div performs element-wise division.
// Division by zero follows IEEE 754.
func (v F32x4) Div(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// MulAdd returns v*m + a per lane.
func (v F32x4) MulAdd(m, a F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i]*m[i] + a[i]
	}
	return r
}

// Min performs element-wise minimum.
func (v F32x4) Min(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		if v[i] < o[i] {
			r[i] = v[i]
		} else {
			r[i] = o[i]
		}
	}
	return r
}

// Max performs element-wise maximum.
func (v F32x4) Max(o F32x4) F32x4 {
	var r F32x4
	for i := range v {
		if v[i] > o[i] {
			r[i] = v[i]
		} else {
			r[i] = o[i]
		}
	}
	return r
}

// Clamp clamps each lane to [minVal, maxVal].
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	var r F32x4
	for i := range v {
		switch {
		case v[i] < minVal:
			r[i] = minVal
		case v[i] > maxVal:
			r[i] = maxVal
		default:
			r[i] = v[i]
		}
	}
	return r
}

// Abs returns |v| per lane.
func (v F32x4) Abs() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Abs(v[i])
	}
	return r
}

// Log returns the natural logarithm per lane.
func (v F32x4) Log() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Log(v[i])
	}
	return r
}

// Exp returns e**v per lane.
func (v F32x4) Exp() F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Exp(v[i])
	}
	return r
}

// Pow raises every lane to the power e.
func (v F32x4) Pow(e float32) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Pow(v[i], e)
	}
	return r
}

// PowV raises each lane to the matching lane of e.
func (v F32x4) PowV(e F32x4) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = math32.Pow(v[i], e[i])
	}
	return r
}

// Lt returns a lane mask of v < o.
func (v F32x4) Lt(o F32x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] < o[i]
	}
	return m
}

// Le returns a lane mask of v <= o.
func (v F32x4) Le(o F32x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] <= o[i]
	}
	return m
}

// Eq returns a lane mask of v == o.
func (v F32x4) Eq(o F32x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] == o[i]
	}
	return m
}

// Mask4 is a per-lane boolean produced by F32x4 comparisons.
type Mask4 [4]bool

// Select returns a where the mask is set and b elsewhere.
func (m Mask4) Select(a, b F32x4) F32x4 {
	var r F32x4
	for i := range m {
		if m[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// All reports whether every lane is set.
func (m Mask4) All() bool {
	return m[0] && m[1] && m[2] && m[3]
}
