package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/dynbitset"
)

// Config controls how much randomized coverage a test runs.
type Config struct {
	// Seed is the initial seed for NewRNG.
	Seed int64
	// Iterations is the number of random inputs per property.
	Iterations int
	// Variations is the number of random arguments tried per input.
	Variations int
	// MaxBits bounds the length of random bitsets.
	MaxBits int
}

// DefaultConfig is the configuration used by the package tests.
var DefaultConfig = Config{
	Seed:       314159,
	Iterations: 100,
	Variations: 10,
	MaxBits:    300,
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntRange returns a pseudo-random number in [lo,hi].
func (r *RNG) IntRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Intn(hi-lo+1)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bools returns n pseudo-random bools. Index i models bit i.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.rand.Intn(2) == 1
	}
	return bits
}

// BitString returns a random string of n '0'/'1' digits.
func (r *RNG) BitString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0' + byte(r.rand.Intn(2))
	}
	return string(buf)
}

// Blocks returns n pseudo-random blocks of type W.
func Blocks[W ~uint8 | ~uint16 | ~uint32 | ~uint64](r *RNG, n int) []W {
	r.mu.Lock()
	defer r.mu.Unlock()

	blocks := make([]W, n)
	for i := range blocks {
		blocks[i] = W(r.rand.Uint64())
	}
	return blocks
}

// BoolsString renders a bool model most-significant bit first.
func BoolsString(bits []bool) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		c := byte('0')
		if b {
			c = '1'
		}
		buf[len(bits)-1-i] = c
	}
	return string(buf)
}

// CheckConsistency verifies the storage invariants of b: the block count
// matches Len and the unused bits of the last block are zero.
func CheckConsistency[B dynbitset.Block](b *dynbitset.Bitset[B]) error {
	w := dynbitset.BlockBits[B]()
	blocks := b.Blocks()

	if want := (b.Len() + w - 1) / w; len(blocks) != want {
		return fmt.Errorf("bitset of %d bits has %d blocks, want %d", b.Len(), len(blocks), want)
	}
	if extra := b.Len() % w; extra > 0 {
		if last := blocks[len(blocks)-1]; last>>extra != 0 {
			return fmt.Errorf("unused bits of last block are set: %#x", last)
		}
	}
	return nil
}
