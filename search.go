package dynbitset

import (
	"iter"

	"github.com/hupe1980/dynbitset/internal/kernel"
)

// FindFirst returns the position of the lowest set bit, or Npos if none.
func (b *Bitset[B]) FindFirst() int {
	i := kernel.FirstNonZero(b.blocks)
	if i < 0 {
		return Npos
	}
	return i*BlockBits[B]() + kernel.TrailingZeros(b.blocks[i])
}

// FindNext returns the position of the lowest set bit strictly after
// prev, or Npos if none. A negative prev searches from position 0.
func (b *Bitset[B]) FindNext(prev int) int {
	if b.n == 0 || prev >= b.n-1 {
		return Npos
	}
	if prev < 0 {
		return b.FindFirst()
	}

	w := BlockBits[B]()
	start := prev + 1
	fb := start / w

	if blk := b.blocks[fb] >> (start % w); blk != 0 {
		return start + kernel.TrailingZeros(blk)
	}

	rest := b.blocks[fb+1:]
	i := kernel.FirstNonZero(rest)
	if i < 0 {
		return Npos
	}
	return (fb+1+i)*w + kernel.TrailingZeros(rest[i])
}

// ForEach calls fn for each set bit in ascending order.
// Iteration stops early if fn returns false.
func (b *Bitset[B]) ForEach(fn func(pos int) bool) {
	w := BlockBits[B]()
	for i, blk := range b.blocks {
		base := i * w
		for blk != 0 {
			if !fn(base + kernel.TrailingZeros(blk)) {
				return
			}
			blk &= blk - 1
		}
	}
}

// Ones returns an iterator over the positions of set bits in ascending order.
func (b *Bitset[B]) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		b.ForEach(yield)
	}
}
