package floatbits

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		sign, exp, mant uint32
		f               float32
	}{
		{0, 0, 0, 0},
		{0, Bias, 0, 1},
		{1, Bias, 0, -1},
		{0, Bias - 1, 0, 0.5},
		{0, Bias, 1 << (MantBits - 1), 1.5},
		{1, Bias + 1, 1 << (MantBits - 1), -3},
		{0, Bias + 4, 0, 16},
		{0, ExpMask, 0, float32(math.Inf(1))},
		{1, ExpMask, 0, float32(math.Inf(-1))},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.f, math.Float32frombits(Pack(test.sign, test.exp, test.mant)))
		})
	}
}

func TestSplit(t *testing.T) {
	a := assert.New(t)
	sign, exp, mant := Split(math.Float32bits(6.5))
	a.Equal(uint32(0), sign)
	a.Equal(uint32(Bias+2), exp)
	a.Equal(uint32(0x500000), mant)

	for _, exp := range []uint32{0, 1, Bias, ExpMask} {
		for _, mant := range []uint32{0, 1, 1 << (MantBits - 1), MantMask} {
			for sign := uint32(0); sign <= 1; sign++ {
				bits := Pack(sign, exp, mant)
				s, e, m := Split(bits)
				a.Equal(sign, s)
				a.Equal(exp, e)
				a.Equal(mant, m)
				a.Equal(bits, Pack(s, e, m))
			}
		}
	}
}
