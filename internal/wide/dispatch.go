package wide

import (
	"os"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Vector widths in float32 lanes.
const (
	Lanes4 = 4
	Lanes8 = 8
)

// NoSIMDEnv disables the 8-lane loops when set to a non-empty value.
const NoSIMDEnv = "PIXKERN_NO_SIMD"

var lanes atomic.Int32

func init() {
	lanes.Store(int32(detectLanes()))
}

func detectLanes() int {
	if os.Getenv(NoSIMDEnv) != "" {
		return Lanes4
	}
	// 256-bit float registers hold two RGBA pixels.
	if cpu.X86.HasAVX2 || cpu.X86.HasAVX512F {
		return Lanes8
	}
	// NEON, SSE2 and everything else run 128-bit (one pixel) loops.
	return Lanes4
}

// Lanes returns the float32 vector width kernels should use.
func Lanes() int {
	return int(lanes.Load())
}

// SetLanes overrides the detected width and returns the previous value.
// Only Lanes4 and Lanes8 are accepted; other values are ignored.
func SetLanes(n int) int {
	prev := int(lanes.Load())
	if n == Lanes4 || n == Lanes8 {
		lanes.Store(int32(n))
	}
	return prev
}

// Name describes the active width for diagnostics.
func Name() string {
	switch {
	case Lanes() == Lanes8 && cpu.X86.HasAVX512F:
		return "avx512"
	case Lanes() == Lanes8:
		return "avx2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	case cpu.X86.HasSSE2:
		return "sse2"
	default:
		return "scalar"
	}
}
