// Package quantize maps the real-valued fields of a GP-Tag pose into
// fixed-width unsigned integers, and back, following the fixed-point
// scheme of the GP-Tag format.
package quantize

import (
	"golang.org/x/exp/constraints"
)

// clamp restricts v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Field describes the fixed-point encoding of one real-valued input: a
// closed range [Min, Max] quantized to Bits unsigned bits.
type Field struct {
	Min, Max float64
	Bits     uint
}

// MaxValue returns 2^Bits - 1, the largest representable quantized value.
func (f Field) MaxValue() uint64 {
	return (uint64(1) << f.Bits) - 1
}

// Quantize computes q = floor((value - min) * (2^n - 1) / (max - min)),
// truncating toward zero. The caller must have already range-checked
// value against [f.Min, f.Max]; Quantize clamps defensively so a
// value exactly at the boundary never overflows Bits due to floating
// point error.
//
// The intermediate product is computed in float64 and converted with a
// single truncating cast. The largest product (longitude,
// 360 * (2^36-1), just under 2^45) fits inside float64's 53-bit
// mantissa, so the range end points quantize exactly to 0 and 2^Bits-1.
func (f Field) Quantize(value float64) uint64 {
	span := f.Max - f.Min
	if span <= 0 {
		return 0
	}
	scaled := (value - f.Min) * float64(f.MaxValue()) / span
	q := uint64(scaled)
	return clampU64(q, 0, f.MaxValue())
}

// Dequantize recovers an approximation of the original value from a
// quantized integer. dequantize(quantize(v)) is within one least
// significant unit of v for any v in [f.Min, f.Max].
func (f Field) Dequantize(q uint64) float64 {
	span := f.Max - f.Min
	return f.Min + float64(q)*span/float64(f.MaxValue())
}

// InRange reports whether value falls within the field's declared domain.
func (f Field) InRange(value float64) bool {
	return value >= f.Min && value <= f.Max
}

func clampU64(v, lo, hi uint64) uint64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Field definitions from the GP-Tag format (spec §3).
var (
	Latitude   = Field{Min: -90, Max: 90, Bits: 35}
	Longitude  = Field{Min: -180, Max: 180, Bits: 36}
	Altitude   = Field{Min: -10000, Max: 10000, Bits: 25}
	Quaternion = Field{Min: -1, Max: 1, Bits: 16}
	Scale      = Field{Min: 0, Max: 3.6, Bits: 16}
)

// ClampInt restricts an integer value to [0, maxValue]. gptag.Encode does
// not call it: out-of-range accuracy, tag ID and version ID are rejected
// there, not clamped.
func ClampInt(v, maxValue int) int {
	return clamp(v, 0, maxValue)
}
