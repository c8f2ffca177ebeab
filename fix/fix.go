// Package fix implements the PICA200's binary fixed-point number used
// for screen-space coordinates.
package fix

import (
	"fmt"
	"math"
	"strconv"
)

const (
	fracBits = 4
	scale    = 1 << fracBits

	fracMask = scale - 1
	intMask  = ^fracMask
)

const (
	Zero = Fix12P4(0)
	One  = Fix12P4(scale)
	// Max is 2047+15/16, the largest representable value.
	Max = Fix12P4(math.MaxInt16)
	// Min is -2048, the smallest representable value.
	Min = Fix12P4(math.MinInt16)
)

type number = int16

// Fix12P4 is a fixed-point number held in a 16-bit two's complement
// word, with 12 integer and 4 fraction bits:
//
//	15          3  0
//	____________|___
//	iiiiiiiiiiiiffff
//
// A word holding raw represents the number raw/16. Arithmetic wraps
// silently at 16 bits the way the hardware register does. Fix12P4 is an
// ordinary integer type underneath, so ==, < and the other comparison
// operators order values by their signed raw words.
type Fix12P4 number

// FromRaw reinterprets a 16-bit register word as a fixed-point value.
func FromRaw(raw int16) Fix12P4 {
	return Fix12P4(raw)
}

// FromInt returns i as a fixed-point value.
// Values outside [-2048, 2047] wrap via 16-bit truncation.
func FromInt(i int16) Fix12P4 {
	return Fix12P4(i) << fracBits
}

// FromIntAndFrac packs an integer part and a fraction counted in
// sixteenths, giving i + (frac&15)/16 for in-range i.
func FromIntAndFrac(i int16, frac uint16) Fix12P4 {
	return Fix12P4(i)<<fracBits | Fix12P4(frac)&fracMask
}

// FromFloat returns f rounded to the nearest sixteenth, with halves
// rounded away from zero, truncated to 16 bits. NaNs and values beyond
// the 64-bit integer range flush to Zero.
func FromFloat(f float32) Fix12P4 {
	r := math.Round(float64(f) * scale)
	if math.IsNaN(r) || r < -1<<63 || r >= 1<<63 {
		return Zero
	}
	return Fix12P4(int64(r))
}

// Raw returns the underlying register word.
func (f Fix12P4) Raw() int16 {
	return number(f)
}

// Int returns the integer part of f, truncated toward negative infinity.
func (f Fix12P4) Int() int16 {
	return number(f&intMask) / scale
}

// Frac returns the fraction of f in sixteenths, in [0, 15] regardless
// of sign.
func (f Fix12P4) Frac() uint16 {
	return uint16(f & fracMask)
}

// Floor returns the largest integral value not greater than f.
func (f Fix12P4) Floor() Fix12P4 {
	return f & intMask
}

// Ceil returns the smallest integral value not less than f.
// Values in (2047, Max] have no representable ceiling and wrap to Min.
func (f Fix12P4) Ceil() Fix12P4 {
	return (f + fracMask).Floor()
}

// Round returns the nearest integral value, with halves rounded up.
// Values in [2047.5, Max] wrap to Min.
func (f Fix12P4) Round() Fix12P4 {
	return (f + scale/2).Floor()
}

// Float64 returns the represented number raw/16. The conversion is exact.
func (f Fix12P4) Float64() float64 {
	return float64(f) / scale
}

// Add returns f+other, wrapping at 16 bits.
func (f Fix12P4) Add(other Fix12P4) Fix12P4 {
	return f + other
}

// Sub returns f-other, wrapping at 16 bits.
func (f Fix12P4) Sub(other Fix12P4) Fix12P4 {
	return f - other
}

// Mul returns f*other. The raw product is formed in 32 bits, scaled
// back with truncation toward zero, and truncated to 16 bits.
func (f Fix12P4) Mul(other Fix12P4) Fix12P4 {
	return Fix12P4(int32(f) * int32(other) / scale)
}

// Div returns f/other, computed in 32 bits with truncation toward zero
// and truncated to 16 bits. Div panics if other is Zero.
func (f Fix12P4) Div(other Fix12P4) Fix12P4 {
	if other == Zero {
		panic("division by zero")
	}
	return Fix12P4(int32(f) * scale / int32(other))
}

// Neg returns -f. Min negates to itself.
func (f Fix12P4) Neg() Fix12P4 {
	return -f
}

// Abs returns the absolute value of f. Abs(Min) stays Min.
func (f Fix12P4) Abs() Fix12P4 {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1 for negative, zero, and positive f.
func (f Fix12P4) Sign() int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

// Cmp compares two values.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
func (f Fix12P4) Cmp(other Fix12P4) int {
	if f == other {
		return 0
	}
	if f > other {
		return 1
	}
	return -1
}

// String returns the exact decimal representation of f.
func (f Fix12P4) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// GoString returns a debug representation with the raw register word.
func (f Fix12P4) GoString() string {
	return f.String() + fmt.Sprintf(" {%#06x}", uint16(f))
}
