// Copyright 2026 The picaemu Authors. All rights reserved.

// Package pica implements the PICA200's reduced floating-point formats:
// 24-bit, 20-bit, and 16-bit minifloats decoded from hardware register
// patterns into native float32 values the pipeline stages compute with.
//
// The formats encode no infinities, NaNs, or denormals. The only
// special pattern is all-zero exponent and mantissa, which means a
// signed zero. Infinities and NaNs still arise from arithmetic on
// decoded values and follow native float behavior, except for the
// hardware's multiply rule: zero times anything, infinity included,
// is zero.
package pica

import (
	"fmt"
	"math"
	"strconv"

	"github.com/picaemu/numeric/internal/floatbits"
)

// Float is a hardware float with layout L, stored as a regular float32
// merely for computation. FromRaw and Bits define the canonical bit
// pattern; arithmetic between them runs at native precision with no
// re-quantization. The zero value is +0.
type Float[L Layout] struct {
	value float32
}

// The named instantiations the pipeline stages consume.
type (
	// Float24 carries vertex attributes, shader uniforms, and most
	// other shader pipeline values.
	Float24 = Float[M16E7]
	// Float20 backs narrower fixed-function register fields.
	Float20 = Float[M12E7]
	// Float16 is the half-width form of the same encoding.
	Float16 = Float[M10E5]
)

// FromRaw decodes an M+E+1-bit register pattern laid out as
// [sign | exponent | mantissa] from most to least significant. Every
// pattern decodes to a defined value. Stray bits above the format width
// are ignored; masking register fields is the wire decoder's job.
func FromRaw[L Layout](bits uint32) Float[L] {
	var l L
	m, e := l.MantissaBits(), l.ExponentBits()
	sign := bits >> (m + e) & 1

	if bits&(1<<(m+e)-1) == 0 {
		// Exponent and mantissa all zero is the hardware encoding of a
		// signed zero. These formats have no denormals.
		return Float[L]{math.Float32frombits(sign << floatbits.SignShift)}
	}

	bias := 128 - uint32(1)<<(e-1)
	exp := bits >> m & (1<<e - 1)
	mant := bits & (1<<m - 1)
	return Float[L]{math.Float32frombits(
		floatbits.Pack(sign, exp+bias, mant<<(floatbits.MantBits-m)))}
}

// FromFloat32 wraps a native value without re-quantizing it to the
// format's mantissa width. Values produced by FromRaw already respect
// hardware precision; this path is for constants and for values known
// to fit.
func FromFloat32[L Layout](f float32) Float[L] {
	return Float[L]{f}
}

// Zero returns +0, the additive identity. It equals the Go zero value
// of Float[L].
func Zero[L Layout]() Float[L] {
	return Float[L]{}
}

// Constructors for the named formats.

func Float24FromRaw(bits uint32) Float24 { return FromRaw[M16E7](bits) }
func Float20FromRaw(bits uint32) Float20 { return FromRaw[M12E7](bits) }
func Float16FromRaw(bits uint32) Float16 { return FromRaw[M10E5](bits) }

func Float24FromFloat32(f float32) Float24 { return FromFloat32[M16E7](f) }
func Float20FromFloat32(f float32) Float20 { return FromFloat32[M12E7](f) }
func Float16FromFloat32(f float32) Float16 { return FromFloat32[M10E5](f) }

// Bits reconstructs the hardware pattern for the stored value: the top
// M mantissa bits are kept with no rounding and the exponent is
// re-biased. Values below the format's range flush to a signed zero;
// values above it, infinities and NaNs included, clamp to the largest
// finite pattern. Bits inverts FromRaw over the whole raw domain.
func (f Float[L]) Bits() uint32 {
	var l L
	m, e := l.MantissaBits(), l.ExponentBits()
	bias := 128 - uint32(1)<<(e-1)

	sign, exp, mant := floatbits.Split(math.Float32bits(f.value))
	mant >>= floatbits.MantBits - m
	switch {
	case exp < bias:
		// IEEE zeros and denormals land here as well.
		return sign << (m + e)
	case exp-bias > 1<<e-1:
		return sign<<(m+e) | 1<<(m+e) - 1
	}
	return sign<<(m+e) | (exp-bias)<<m | mant
}

// Float32 returns the stored native value. Mostly useful for logging
// and for handing results to native-float consumers; pipeline math
// should stay on Float operations so the multiply rule applies.
func (f Float[L]) Float32() float32 {
	return f.value
}

// IsZero reports whether f is a zero of either sign.
func (f Float[L]) IsZero() bool {
	return f.value == 0
}

// IsNaN reports whether f holds an IEEE NaN. No raw pattern decodes to
// one; NaNs only enter through arithmetic such as 0/0.
func (f Float[L]) IsNaN() bool {
	return math.IsNaN(float64(f.value))
}

// IsInf reports whether f holds an infinity of either sign. Like NaNs,
// infinities are only produced by arithmetic, never by FromRaw.
func (f Float[L]) IsInf() bool {
	return math.IsInf(float64(f.value), 0)
}

// Add returns f+other at native float precision.
func (f Float[L]) Add(other Float[L]) Float[L] {
	return Float[L]{f.value + other.value}
}

// Sub returns f-other at native float precision.
func (f Float[L]) Sub(other Float[L]) Float[L] {
	return Float[L]{f.value - other.value}
}

// Mul returns f*other with the hardware's zero rule: a zero times
// anything but a NaN is exactly +0, even when the other operand is an
// infinity and IEEE arithmetic would give NaN.
func (f Float[L]) Mul(other Float[L]) Float[L] {
	if (f.value == 0 && !math.IsNaN(float64(other.value))) ||
		(other.value == 0 && !math.IsNaN(float64(f.value))) {
		return Float[L]{}
	}
	return Float[L]{f.value * other.value}
}

// Div returns f/other with native float semantics: dividing by zero
// gives an infinity or, for 0/0, a NaN.
func (f Float[L]) Div(other Float[L]) Float[L] {
	return Float[L]{f.value / other.value}
}

// Neg returns f with its sign flipped, -0 included.
func (f Float[L]) Neg() Float[L] {
	return Float[L]{-f.value}
}

// Eq reports whether f equals other under native float comparison:
// zeros of both signs are equal, and a NaN is unequal to everything,
// itself included.
func (f Float[L]) Eq(other Float[L]) bool {
	return f.value == other.value
}

// Ne reports f != other. True whenever either operand is a NaN.
func (f Float[L]) Ne(other Float[L]) bool {
	return f.value != other.value
}

// Less reports f < other. Always false when either operand is a NaN.
func (f Float[L]) Less(other Float[L]) bool {
	return f.value < other.value
}

// LessEq reports f <= other. Always false when either operand is a NaN.
func (f Float[L]) LessEq(other Float[L]) bool {
	return f.value <= other.value
}

// Greater reports f > other. Always false when either operand is a NaN.
func (f Float[L]) Greater(other Float[L]) bool {
	return f.value > other.value
}

// GreaterEq reports f >= other. Always false when either operand is a NaN.
func (f Float[L]) GreaterEq(other Float[L]) bool {
	return f.value >= other.value
}

// String formats the stored value with the shortest decimal that
// round-trips at float32 precision.
func (f Float[L]) String() string {
	return strconv.FormatFloat(float64(f.value), 'g', -1, 32)
}

// GoString returns a debug representation with the canonical pattern.
func (f Float[L]) GoString() string {
	return f.String() + fmt.Sprintf(" {%#x}", f.Bits())
}
