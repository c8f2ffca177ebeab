package floatbits

// Field geometry of an IEEE 754 binary32 pattern.
const (
	SignShift = 31
	ExpShift  = 23
	ExpBits   = 8
	MantBits  = 23

	ExpMask  = 1<<ExpBits - 1
	MantMask = 1<<MantBits - 1

	// Bias is the exponent bias of the binary32 format.
	Bias = 127
)

// Pack assembles a binary32 pattern from a sign bit, a biased exponent,
// and a mantissa. All fields must already fit their widths.
func Pack(sign, exp, mant uint32) uint32 {
	return sign<<SignShift | exp<<ExpShift | mant
}

// Split breaks a binary32 pattern into sign, biased exponent, and mantissa.
func Split(bits uint32) (sign, exp, mant uint32) {
	return bits >> SignShift, bits >> ExpShift & ExpMask, bits & MantMask
}
