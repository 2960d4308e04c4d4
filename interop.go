package dynbitset

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/dynbitset/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the positions of the set
// bits. Bitsets with positions beyond the uint32 range are rejected.
func (b *Bitset[B]) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	if b.n == 0 {
		return rb, nil
	}
	if _, err := conv.IntToUint32(b.n - 1); err != nil {
		return nil, &ErrTooLarge{Size: uint64(b.n), Limit: math.MaxUint32 + 1, cause: err}
	}

	ids := make([]uint32, 0, b.Count())
	b.ForEach(func(pos int) bool {
		ids = append(ids, uint32(pos))
		return true
	})
	rb.AddMany(ids)
	return rb, nil
}

// FromRoaring returns a bitset of size bits with the positions held by rb
// set. Every position in rb must be below size.
func FromRoaring[B Block](rb *roaring.Bitmap, size int) (*Bitset[B], error) {
	if size < 0 {
		return nil, &ErrInvalidArgument{Name: "size", Value: size}
	}

	b := NewSized[B](size)
	if rb.IsEmpty() {
		return b, nil
	}

	maxPos, err := conv.Uint32ToInt(rb.Maximum())
	if err != nil {
		return nil, &ErrTooLarge{Size: uint64(rb.Maximum()) + 1, Limit: math.MaxInt, cause: err}
	}
	if maxPos >= size {
		return nil, &ErrIndexOutOfRange{Index: maxPos, Size: size}
	}

	w := BlockBits[B]()
	it := rb.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		b.blocks[pos/w] |= bitMask[B](pos)
	}
	return b, nil
}

// ToBitSet returns a bits-and-blooms bitset with the same length and bits.
func (b *Bitset[B]) ToBitSet() *bitset.BitSet {
	w := BlockBits[B]()
	words := make([]uint64, blocksRequired[uint64](b.n))
	for i, blk := range b.blocks {
		pos := i * w
		words[pos/64] |= uint64(blk) << (pos % 64)
	}
	return bitset.FromWithLength(uint(b.n), words)
}

// FromBitSet returns a bitset with the same length and bits as bs.
func FromBitSet[B Block](bs *bitset.BitSet) (*Bitset[B], error) {
	n, err := conv.UintToInt(bs.Len())
	if err != nil {
		return nil, &ErrTooLarge{Size: uint64(bs.Len()), Limit: math.MaxInt, cause: err}
	}

	b := NewSized[B](n)
	words := bs.Words()
	w := BlockBits[B]()
	for i := range b.blocks {
		pos := i * w
		if pos/64 >= len(words) {
			break
		}
		b.blocks[i] = B(words[pos/64] >> (pos % 64))
	}
	b.sanitize()
	return b, nil
}
