package pica

// Layout is the bit geometry of a hardware float format: M mantissa
// bits, then E exponent bits, then one sign bit. Implementations are
// empty structs, so a Float carries no layout state at runtime.
type Layout interface {
	MantissaBits() uint32
	ExponentBits() uint32
}

// The three geometries the hardware uses.
type (
	// M16E7 is the 24-bit layout, the widest one and the default for
	// shader values.
	M16E7 struct{}
	// M12E7 is the 20-bit layout of narrower register fields.
	M12E7 struct{}
	// M10E5 is the 16-bit layout, a half-precision shape that encodes
	// no infinities or NaNs of its own.
	M10E5 struct{}
)

func (M16E7) MantissaBits() uint32 { return 16 }
func (M16E7) ExponentBits() uint32 { return 7 }

func (M12E7) MantissaBits() uint32 { return 12 }
func (M12E7) ExponentBits() uint32 { return 7 }

func (M10E5) MantissaBits() uint32 { return 10 }
func (M10E5) ExponentBits() uint32 { return 5 }

// Width returns the total number of bits in L's register pattern,
// M+E+1. Wire decoders use it to mask a register field before FromRaw.
func Width[L Layout]() uint32 {
	var l L
	return l.MantissaBits() + l.ExponentBits() + 1
}
