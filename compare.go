package dynbitset

import (
	"cmp"
	"slices"

	"github.com/hupe1980/dynbitset/internal/kernel"
)

// IsSubsetOf reports whether every bit set in b is also set in other.
// Both bitsets must have the same Len.
func (b *Bitset[B]) IsSubsetOf(other *Bitset[B]) bool {
	b.checkSameSize(other)
	for i, blk := range b.blocks {
		if blk&^other.blocks[i] != 0 {
			return false
		}
	}
	return true
}

// IsProperSubsetOf reports whether b is a subset of other and the two differ.
// Both bitsets must have the same Len.
func (b *Bitset[B]) IsProperSubsetOf(other *Bitset[B]) bool {
	b.checkSameSize(other)
	proper := false
	for i, blk := range b.blocks {
		o := other.blocks[i]
		if blk&^o != 0 {
			return false
		}
		if blk != o {
			proper = true
		}
	}
	return proper
}

// Intersects reports whether b and other share a set bit. Only the common
// prefix of blocks is compared, so sizes may differ.
func (b *Bitset[B]) Intersects(other *Bitset[B]) bool {
	n := min(len(b.blocks), len(other.blocks))
	for i := range n {
		if b.blocks[i]&other.blocks[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether b and other have the same Len and the same bits.
func (b *Bitset[B]) Equal(other *Bitset[B]) bool {
	return b.n == other.n && slices.Equal(b.blocks, other.blocks)
}

// Less reports whether b orders before other. See Compare.
func (b *Bitset[B]) Less(other *Bitset[B]) bool {
	return b.Compare(other) < 0
}

// Compare orders bitsets by numeric value with bit 0 as the least
// significant bit. An empty bitset orders before any non-empty one.
// Bitsets with the same value and different lengths order by length.
//
// It returns -1, 0 or +1. Compare returns 0 exactly when Equal is true.
func (b *Bitset[B]) Compare(other *Bitset[B]) int {
	switch {
	case b.n == 0 && other.n == 0:
		return 0
	case b.n == 0:
		return -1
	case other.n == 0:
		return 1
	}

	lhs, rhs := b.blocks, other.blocks
	switch {
	case len(lhs) > len(rhs):
		if kernel.FirstNonZero(lhs[len(rhs):]) >= 0 {
			return 1
		}
		lhs = lhs[:len(rhs)]
	case len(rhs) > len(lhs):
		if kernel.FirstNonZero(rhs[len(lhs):]) >= 0 {
			return -1
		}
		rhs = rhs[:len(lhs)]
	}

	for i := len(lhs) - 1; i >= 0; i-- {
		if c := cmp.Compare(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(b.n, other.n)
}
