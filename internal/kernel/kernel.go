package kernel

import "math/bits"

// Word is the set of unsigned fixed-width integers a kernel operates on.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// And performs dst[i] &= src[i] for all words.
func And[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNot performs dst[i] &= ^src[i] for all words.
func AndNot[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// Or performs dst[i] |= src[i] for all words.
func Or[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// Xor performs dst[i] ^= src[i] for all words.
func Xor[W Word](dst, src []W) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// Not complements every word in place.
func Not[W Word](words []W) {
	for i := range words {
		words[i] = ^words[i]
	}
}

// Fill sets every word to v.
func Fill[W Word](words []W, v W) {
	for i := range words {
		words[i] = v
	}
}

// FirstNonZero returns the index of the first non-zero word, or -1.
func FirstNonZero[W Word](words []W) int {
	for i, w := range words {
		if w != 0 {
			return i
		}
	}
	return -1
}

// Popcount counts all set bits across words.
func Popcount[W Word](words []W) int {
	if activeStrategy == Table {
		return popcountTable(words)
	}
	return popcountHardware(words)
}

// TrailingZeros returns the index of the lowest set bit of w.
// The result is the word width when w is zero.
func TrailingZeros[W Word](w W) int {
	if w == 0 {
		return Width[W]()
	}
	return bits.TrailingZeros64(uint64(w))
}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}
