package dynbitset

import (
	"iter"
	"slices"
)

// Bitset is a resizable sequence of bits packed into blocks of type B.
//
// Bit i lives in block i/W at intra-block position i%W, where W is
// BlockBits[B](). Bits of the last block at or above Len()%W are always
// zero.
//
// The zero value is an empty bitset ready to use. Assigning a Bitset value
// shares its storage; use Clone for an independent copy.
//
// A Bitset is not safe for concurrent use. Callers sharing an instance
// between goroutines must synchronize access externally.
type Bitset[B Block] struct {
	blocks []B
	n      int
}

// New returns an empty bitset.
func New[B Block]() *Bitset[B] {
	return &Bitset[B]{}
}

// NewSized returns a bitset of nbits zero bits.
func NewSized[B Block](nbits int) *Bitset[B] {
	return NewWithValue[B](nbits, 0)
}

// NewWithValue returns a bitset of nbits bits initialized from value.
// Bit 0 of value becomes bit 0 of the bitset. Bits of value at or above
// nbits are dropped; bits of the bitset at or above 64 are zero.
func NewWithValue[B Block](nbits int, value uint64) *Bitset[B] {
	checkNonNegative("nbits", nbits)

	b := &Bitset[B]{
		blocks: make([]B, blocksRequired[B](nbits)),
		n:      nbits,
	}
	if nbits == 0 || value == 0 {
		return b
	}

	w := BlockBits[B]()
	for i := 0; i < len(b.blocks) && i*w < 64; i++ {
		b.blocks[i] = B(value >> (i * w))
	}
	b.sanitize()
	return b
}

// FromBlocks returns a bitset holding the given blocks. Each block
// contributes W bits; blocks[0] holds bits 0..W-1.
func FromBlocks[B Block](blocks ...B) *Bitset[B] {
	b := &Bitset[B]{}
	b.Append(blocks...)
	return b
}

// Len returns the number of bits.
func (b *Bitset[B]) Len() int {
	return b.n
}

// NumBlocks returns the number of storage blocks in use.
func (b *Bitset[B]) NumBlocks() int {
	return len(b.blocks)
}

// Empty reports whether the bitset holds no bits.
func (b *Bitset[B]) Empty() bool {
	return b.n == 0
}

// Capacity returns the number of bits the bitset can hold without
// reallocating.
func (b *Bitset[B]) Capacity() int {
	return cap(b.blocks) * BlockBits[B]()
}

// Blocks returns the underlying blocks. The slice aliases the bitset's
// storage and is invalidated by any operation that changes Len.
// Writers must keep the unused bits of the last block zero.
func (b *Bitset[B]) Blocks() []B {
	return b.blocks
}

// Reserve grows the capacity to at least nbits bits. Len and bit values
// are unchanged.
func (b *Bitset[B]) Reserve(nbits int) {
	checkNonNegative("nbits", nbits)
	if need := blocksRequired[B](nbits); need > cap(b.blocks) {
		b.blocks = slices.Grow(b.blocks, need-len(b.blocks))
	}
}

// ShrinkToFit releases unused capacity.
func (b *Bitset[B]) ShrinkToFit() {
	if cap(b.blocks) > len(b.blocks) {
		shrunk := make([]B, len(b.blocks))
		copy(shrunk, b.blocks)
		b.blocks = shrunk
	}
}

// Resize changes the number of bits to nbits. New bits are zero.
func (b *Bitset[B]) Resize(nbits int) {
	b.ResizeFill(nbits, false)
}

// ResizeFill changes the number of bits to nbits. New bits take the value
// fill, including those that land in the previously unused part of the
// last block.
func (b *Bitset[B]) ResizeFill(nbits int, fill bool) {
	checkNonNegative("nbits", nbits)
	if nbits == b.n {
		return
	}

	oldBlocks := len(b.blocks)
	newBlocks := blocksRequired[B](nbits)

	var init B
	if fill {
		init = ^B(0)
	}

	if fill && nbits > b.n && oldBlocks > 0 {
		if extra := b.extraBits(); extra > 0 {
			b.blocks[oldBlocks-1] |= init << extra
		}
	}

	switch {
	case newBlocks > oldBlocks:
		b.blocks = slices.Grow(b.blocks, newBlocks-oldBlocks)
		for i := oldBlocks; i < newBlocks; i++ {
			b.blocks = append(b.blocks, init)
		}
	case newBlocks < oldBlocks:
		clear(b.blocks[newBlocks:])
		b.blocks = b.blocks[:newBlocks]
	}

	b.n = nbits
	b.sanitize()
}

// Clear removes all bits. Capacity is kept.
func (b *Bitset[B]) Clear() {
	clear(b.blocks)
	b.blocks = b.blocks[:0]
	b.n = 0
}

// PushBack appends one bit.
func (b *Bitset[B]) PushBack(bit bool) {
	pos := b.n
	b.n++
	if b.n <= len(b.blocks)*BlockBits[B]() {
		if bit {
			b.blocks[len(b.blocks)-1] |= bitMask[B](pos)
		}
		return
	}

	var blk B
	if bit {
		blk = 1
	}
	b.blocks = append(b.blocks, blk)
}

// PopBack removes the last bit. It is a no-op on an empty bitset.
func (b *Bitset[B]) PopBack() {
	if b.n == 0 {
		return
	}

	b.n--
	if len(b.blocks) > blocksRequired[B](b.n) {
		// The removed bit was the only used bit of its block.
		b.blocks[len(b.blocks)-1] = 0
		b.blocks = b.blocks[:len(b.blocks)-1]
		return
	}
	b.sanitize()
}

// Append appends W bits per block. The low bits of blocks[0] follow the
// current last bit, whatever the current alignment.
func (b *Bitset[B]) Append(blocks ...B) {
	if len(blocks) == 0 {
		return
	}
	b.blocks = slices.Grow(b.blocks, len(blocks))
	for _, blk := range blocks {
		b.appendBlock(blk)
	}
}

// AppendSeq appends W bits per block yielded by seq. Storage grows as
// blocks arrive.
func (b *Bitset[B]) AppendSeq(seq iter.Seq[B]) {
	for blk := range seq {
		b.appendBlock(blk)
	}
}

// appendBlock splices blk across the boundary of the partial last block.
func (b *Bitset[B]) appendBlock(blk B) {
	w := BlockBits[B]()
	if extra := b.extraBits(); extra == 0 {
		b.blocks = append(b.blocks, blk)
	} else {
		b.blocks[len(b.blocks)-1] |= blk << extra
		b.blocks = append(b.blocks, blk>>(w-extra))
	}
	b.n += w
}

// Clone returns an independent copy of b.
func (b *Bitset[B]) Clone() *Bitset[B] {
	return &Bitset[B]{
		blocks: slices.Clone(b.blocks),
		n:      b.n,
	}
}

// Swap exchanges the contents of b and other.
func (b *Bitset[B]) Swap(other *Bitset[B]) {
	b.blocks, other.blocks = other.blocks, b.blocks
	b.n, other.n = other.n, b.n
}

// extraBits returns the number of used bits in a partial last block,
// or 0 if the last block is full.
func (b *Bitset[B]) extraBits() int {
	return b.n % BlockBits[B]()
}

// sanitize zeroes the unused bits of the last block.
func (b *Bitset[B]) sanitize() {
	if extra := b.extraBits(); extra > 0 {
		b.blocks[len(b.blocks)-1] &^= ^B(0) << extra
	}
}

func (b *Bitset[B]) checkIndex(pos int) {
	if pos < 0 || pos >= b.n {
		panic(&ErrIndexOutOfRange{Index: pos, Size: b.n})
	}
}

// checkRange accepts [pos, pos+n) within [0, Len). A zero-length range
// may start at Len.
func (b *Bitset[B]) checkRange(pos, n int) {
	checkNonNegative("len", n)
	if pos < 0 || pos > b.n-n {
		panic(&ErrRangeOutOfBounds{Pos: pos, Len: n, Size: b.n})
	}
}

func (b *Bitset[B]) checkSameSize(other *Bitset[B]) {
	if b.n != other.n {
		panic(&ErrSizeMismatch{Left: b.n, Right: other.n})
	}
}

func checkNonNegative(name string, v int) {
	if v < 0 {
		panic(&ErrInvalidArgument{Name: name, Value: v})
	}
}
