package kernel

import "math/bits"

// byteCounts[b] is the number of set bits in b.
var byteCounts = func() (t [256]uint8) {
	for i := range t {
		t[i] = t[i/2] + uint8(i&1)
	}
	return t
}()

func popcountHardware[W Word](words []W) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(uint64(words[i]))
		count += bits.OnesCount64(uint64(words[i+1]))
		count += bits.OnesCount64(uint64(words[i+2]))
		count += bits.OnesCount64(uint64(words[i+3]))
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(uint64(words[i]))
	}
	return count
}

func popcountTable[W Word](words []W) int {
	count := 0
	for _, w := range words {
		for v := uint64(w); v != 0; v >>= 8 {
			count += int(byteCounts[v&0xff])
		}
	}
	return count
}
