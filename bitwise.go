package dynbitset

import "github.com/hupe1980/dynbitset/internal/kernel"

// And sets b to b AND other. Both bitsets must have the same Len.
func (b *Bitset[B]) And(other *Bitset[B]) *Bitset[B] {
	b.checkSameSize(other)
	kernel.And(b.blocks, other.blocks)
	return b
}

// Or sets b to b OR other. Both bitsets must have the same Len.
func (b *Bitset[B]) Or(other *Bitset[B]) *Bitset[B] {
	b.checkSameSize(other)
	kernel.Or(b.blocks, other.blocks)
	return b
}

// Xor sets b to b XOR other. Both bitsets must have the same Len.
func (b *Bitset[B]) Xor(other *Bitset[B]) *Bitset[B] {
	b.checkSameSize(other)
	kernel.Xor(b.blocks, other.blocks)
	return b
}

// AndNot sets b to b AND NOT other. Both bitsets must have the same Len.
func (b *Bitset[B]) AndNot(other *Bitset[B]) *Bitset[B] {
	b.checkSameSize(other)
	kernel.AndNot(b.blocks, other.blocks)
	return b
}

// ShiftLeft moves every bit toward higher positions by n. Bits shifted
// past Len are discarded and the low n bits become zero. Len is unchanged.
func (b *Bitset[B]) ShiftLeft(n int) *Bitset[B] {
	checkNonNegative("shift", n)
	switch {
	case n == 0:
		return b
	case n >= b.n:
		return b.ResetAll()
	}

	w := BlockBits[B]()
	blockShift, offset := n/w, n%w
	last := len(b.blocks) - 1

	if offset == 0 {
		for i := last; i >= blockShift; i-- {
			b.blocks[i] = b.blocks[i-blockShift]
		}
	} else {
		rev := w - offset
		for i := last; i > blockShift; i-- {
			b.blocks[i] = b.blocks[i-blockShift]<<offset | b.blocks[i-blockShift-1]>>rev
		}
		b.blocks[blockShift] = b.blocks[0] << offset
	}
	clear(b.blocks[:blockShift])

	b.sanitize()
	return b
}

// ShiftRight moves every bit toward lower positions by n. The high n bits
// become zero. Len is unchanged.
func (b *Bitset[B]) ShiftRight(n int) *Bitset[B] {
	checkNonNegative("shift", n)
	switch {
	case n == 0:
		return b
	case n >= b.n:
		return b.ResetAll()
	}

	w := BlockBits[B]()
	blockShift, offset := n/w, n%w
	last := len(b.blocks) - blockShift - 1

	if offset == 0 {
		for i := 0; i <= last; i++ {
			b.blocks[i] = b.blocks[i+blockShift]
		}
	} else {
		rev := w - offset
		for i := 0; i < last; i++ {
			b.blocks[i] = b.blocks[i+blockShift]>>offset | b.blocks[i+blockShift+1]<<rev
		}
		b.blocks[last] = b.blocks[len(b.blocks)-1] >> offset
	}
	clear(b.blocks[last+1:])

	return b
}

// Intersection returns a new bitset holding a AND b.
func Intersection[B Block](a, b *Bitset[B]) *Bitset[B] {
	return a.Clone().And(b)
}

// Union returns a new bitset holding a OR b.
func Union[B Block](a, b *Bitset[B]) *Bitset[B] {
	return a.Clone().Or(b)
}

// SymmetricDifference returns a new bitset holding a XOR b.
func SymmetricDifference[B Block](a, b *Bitset[B]) *Bitset[B] {
	return a.Clone().Xor(b)
}

// Difference returns a new bitset holding a AND NOT b.
func Difference[B Block](a, b *Bitset[B]) *Bitset[B] {
	return a.Clone().AndNot(b)
}

// Complement returns a new bitset with every bit of a flipped.
func Complement[B Block](a *Bitset[B]) *Bitset[B] {
	return a.Clone().FlipAll()
}

// ShiftedLeft returns a copy of a shifted left by n.
func ShiftedLeft[B Block](a *Bitset[B], n int) *Bitset[B] {
	return a.Clone().ShiftLeft(n)
}

// ShiftedRight returns a copy of a shifted right by n.
func ShiftedRight[B Block](a *Bitset[B], n int) *Bitset[B] {
	return a.Clone().ShiftRight(n)
}
