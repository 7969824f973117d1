// Package half converts between float32 and IEEE 754 binary16 values,
// the storage format of the 16-bit float RGBA pixel layout.
//
// Format: sign (1 bit) | exponent (5 bits, bias 15) | mantissa (10 bits).
package half

import (
	"encoding/binary"

	"github.com/x448/float16"
)

// Special values.
const (
	Zero   uint16 = 0x0000
	One    uint16 = 0x3C00
	Max    uint16 = 0x7BFF // 65504
	Inf    uint16 = 0x7C00
	NegInf uint16 = 0xFC00
	NaN    uint16 = 0x7E00
)

// ToFloat32 widens a binary16 value. Conversion is exact.
func ToFloat32(h uint16) float32 {
	return float16.Frombits(h).Float32()
}

// FromFloat32 narrows f to binary16 with round-to-nearest-even.
// Values beyond the half range become infinity; values below half the
// smallest subnormal become signed zero.
func FromFloat32(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}

// LoadRGBA decodes four little-endian binary16 channels from p.
func LoadRGBA(p []byte) [4]float32 {
	_ = p[7]
	return [4]float32{
		ToFloat32(binary.LittleEndian.Uint16(p[0:])),
		ToFloat32(binary.LittleEndian.Uint16(p[2:])),
		ToFloat32(binary.LittleEndian.Uint16(p[4:])),
		ToFloat32(binary.LittleEndian.Uint16(p[6:])),
	}
}

// StoreRGBA encodes four channels into p as little-endian binary16.
func StoreRGBA(p []byte, v [4]float32) {
	_ = p[7]
	binary.LittleEndian.PutUint16(p[0:], FromFloat32(v[0]))
	binary.LittleEndian.PutUint16(p[2:], FromFloat32(v[1]))
	binary.LittleEndian.PutUint16(p[4:], FromFloat32(v[2]))
	binary.LittleEndian.PutUint16(p[6:], FromFloat32(v[3]))
}
