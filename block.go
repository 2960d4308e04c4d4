package dynbitset

import (
	"math"

	"github.com/hupe1980/dynbitset/internal/kernel"
)

// Block is the set of unsigned fixed-width integers usable as bitset storage.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Npos is returned by searches that find no set bit.
const Npos = math.MaxInt

// BlockBits returns the number of bits held by one block of type B.
func BlockBits[B Block]() int {
	return kernel.Width[B]()
}

// blocksRequired returns ceil(nbits / W).
func blocksRequired[B Block](nbits int) int {
	w := BlockBits[B]()
	if nbits%w > 0 {
		return nbits/w + 1
	}
	return nbits / w
}

// bitMask returns the single-bit mask of pos within its block.
func bitMask[B Block](pos int) B {
	return B(1) << (pos % BlockBits[B]())
}

// rangeMask returns a mask with the intra-block bits first..last (inclusive) set.
func rangeMask[B Block](first, last int) B {
	if last == BlockBits[B]()-1 {
		return ^B(0) << first
	}
	return (B(1)<<(last+1) - 1) ^ (B(1)<<first - 1)
}
