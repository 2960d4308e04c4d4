package dynbitset

import "github.com/hupe1980/dynbitset/internal/kernel"

type spanOp uint8

const (
	spanSet spanOp = iota
	spanReset
	spanFlip
)

// Set sets the bit at pos.
func (b *Bitset[B]) Set(pos int) *Bitset[B] {
	return b.SetTo(pos, true)
}

// SetTo assigns v to the bit at pos.
func (b *Bitset[B]) SetTo(pos int, v bool) *Bitset[B] {
	b.checkIndex(pos)
	i := pos / BlockBits[B]()
	if v {
		b.blocks[i] |= bitMask[B](pos)
	} else {
		b.blocks[i] &^= bitMask[B](pos)
	}
	return b
}

// SetRange assigns v to the n bits starting at pos.
func (b *Bitset[B]) SetRange(pos, n int, v bool) *Bitset[B] {
	if v {
		b.applySpan(pos, n, spanSet)
	} else {
		b.applySpan(pos, n, spanReset)
	}
	return b
}

// SetAll sets every bit.
func (b *Bitset[B]) SetAll() *Bitset[B] {
	kernel.Fill(b.blocks, ^B(0))
	b.sanitize()
	return b
}

// Reset clears the bit at pos.
func (b *Bitset[B]) Reset(pos int) *Bitset[B] {
	return b.SetTo(pos, false)
}

// ResetRange clears the n bits starting at pos.
func (b *Bitset[B]) ResetRange(pos, n int) *Bitset[B] {
	b.applySpan(pos, n, spanReset)
	return b
}

// ResetAll clears every bit.
func (b *Bitset[B]) ResetAll() *Bitset[B] {
	kernel.Fill(b.blocks, 0)
	return b
}

// Flip toggles the bit at pos.
func (b *Bitset[B]) Flip(pos int) *Bitset[B] {
	b.checkIndex(pos)
	b.blocks[pos/BlockBits[B]()] ^= bitMask[B](pos)
	return b
}

// FlipRange toggles the n bits starting at pos.
func (b *Bitset[B]) FlipRange(pos, n int) *Bitset[B] {
	b.applySpan(pos, n, spanFlip)
	return b
}

// FlipAll toggles every bit.
func (b *Bitset[B]) FlipAll() *Bitset[B] {
	kernel.Not(b.blocks)
	b.sanitize()
	return b
}

// Test reports whether the bit at pos is set.
func (b *Bitset[B]) Test(pos int) bool {
	b.checkIndex(pos)
	return b.blocks[pos/BlockBits[B]()]&bitMask[B](pos) != 0
}

// TestSet assigns v to the bit at pos and returns its previous value.
func (b *Bitset[B]) TestSet(pos int, v bool) bool {
	prev := b.Test(pos)
	if prev != v {
		b.blocks[pos/BlockBits[B]()] ^= bitMask[B](pos)
	}
	return prev
}

// All reports whether every bit is set. It is true for an empty bitset.
func (b *Bitset[B]) All() bool {
	if b.n == 0 {
		return true
	}

	full := ^B(0)
	blocks := b.blocks
	if extra := b.extraBits(); extra > 0 {
		if blocks[len(blocks)-1] != full>>(BlockBits[B]()-extra) {
			return false
		}
		blocks = blocks[:len(blocks)-1]
	}
	for _, blk := range blocks {
		if blk != full {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (b *Bitset[B]) Any() bool {
	return kernel.FirstNonZero(b.blocks) >= 0
}

// None reports whether no bit is set. It is true for an empty bitset.
func (b *Bitset[B]) None() bool {
	return !b.Any()
}

// Count returns the number of set bits.
func (b *Bitset[B]) Count() int {
	return kernel.Popcount(b.blocks)
}

// PopcountStrategy reports the popcount implementation used by Count,
// "hardware" or "table".
func PopcountStrategy() string {
	return kernel.ActiveStrategy().String()
}

// applySpan applies op to [pos, pos+n) using a masked edit on each
// partial edge block and whole-block writes in between.
func (b *Bitset[B]) applySpan(pos, n int, op spanOp) {
	b.checkRange(pos, n)
	if n == 0 {
		return
	}

	w := BlockBits[B]()
	first, last := pos, pos+n-1
	fb, lb := first/w, last/w
	fi, li := first%w, last%w

	if fb == lb {
		b.applyMask(fb, rangeMask[B](fi, li), op)
		return
	}

	fullFirst, fullLast := fb, lb
	if fi != 0 {
		b.applyMask(fb, rangeMask[B](fi, w-1), op)
		fullFirst++
	}
	if li != w-1 {
		b.applyMask(lb, rangeMask[B](0, li), op)
		fullLast--
	}

	full := b.blocks[fullFirst : fullLast+1]
	switch op {
	case spanSet:
		kernel.Fill(full, ^B(0))
	case spanReset:
		kernel.Fill(full, 0)
	case spanFlip:
		kernel.Not(full)
	}
}

func (b *Bitset[B]) applyMask(i int, mask B, op spanOp) {
	switch op {
	case spanSet:
		b.blocks[i] |= mask
	case spanReset:
		b.blocks[i] &^= mask
	case spanFlip:
		b.blocks[i] ^= mask
	}
}
