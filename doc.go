// Package dynbitset provides a resizable bitset generic over its storage
// block width.
//
// A Bitset[B] packs bits into a slice of unsigned blocks (uint8, uint16,
// uint32 or uint64). Bit 0 is the least significant bit of the first
// block. Unlike a fixed-size bitset, its length is chosen at runtime and
// changes with Resize, PushBack, PopBack and Append.
//
// # Quick Start
//
//	b := dynbitset.NewWithValue[uint32](12, 0b0100010110111)
//	b.Set(11).Reset(0)
//	fmt.Println(b)               // "100010110110"
//	fmt.Println(b.Count())       // 6
//
//	for pos := range b.Ones() {
//	    fmt.Println(pos)
//	}
//
// # Text Form
//
// String renders the bitset most-significant bit first, the way binary
// literals are written. Parse and Read accept the same form:
//
//	b, err := dynbitset.Parse[uint64]("0110")       // bits 1 and 2 set
//	b, err = dynbitset.Parse[uint64]("..x.", dynbitset.WithDigits('.', 'x'))
//
// # Preconditions
//
// Operations with a caller-checkable precondition (index in range, equal
// sizes for binary operations, non-negative lengths) panic with a typed
// error value such as *ErrIndexOutOfRange or *ErrSizeMismatch. Parsing
// and stream input return errors instead.
//
// # Interop
//
// ToRoaring/FromRoaring convert to github.com/RoaringBitmap/roaring/v2
// bitmaps. ToBitSet/FromBitSet convert to github.com/bits-and-blooms/bitset.
//
// # Popcount Strategy
//
// Count uses a hardware popcount when the CPU provides one and a lookup
// table otherwise. Set DYNBITSET_POPCOUNT=table or DYNBITSET_POPCOUNT=hardware
// to override the detected choice.
package dynbitset
