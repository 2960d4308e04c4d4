package dynbitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynbitset"
	"github.com/hupe1980/dynbitset/testutil"
)

var cfg = testutil.DefaultConfig

func fromBools[B dynbitset.Block](bits []bool) *dynbitset.Bitset[B] {
	b := dynbitset.NewSized[B](len(bits))
	for i, v := range bits {
		if v {
			b.Set(i)
		}
	}
	return b
}

func toBools[B dynbitset.Block](b *dynbitset.Bitset[B]) []bool {
	bits := make([]bool, b.Len())
	for i := range bits {
		bits[i] = b.Test(i)
	}
	return bits
}

func randomBools(rng *testutil.RNG) []bool {
	return rng.Bools(rng.Intn(cfg.MaxBits + 1))
}

func requireConsistent[B dynbitset.Block](t *testing.T, b *dynbitset.Bitset[B]) {
	t.Helper()
	require.NoError(t, testutil.CheckConsistency(b))
}

func countBools(bits []bool) int {
	n := 0
	for _, v := range bits {
		if v {
			n++
		}
	}
	return n
}
