package dynbitset_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynbitset"
	"github.com/hupe1980/dynbitset/testutil"
)

func modelCompare(x, y []bool) int {
	switch {
	case len(x) == 0 && len(y) == 0:
		return 0
	case len(x) == 0:
		return -1
	case len(y) == 0:
		return 1
	}
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		xi := i < len(x) && x[i]
		yi := i < len(y) && y[i]
		if xi != yi {
			if yi {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(len(x), len(y))
}

func TestCompare(t *testing.T) {
	t.Run("uint8", testCompare[uint8])
	t.Run("uint32", testCompare[uint32])
	t.Run("uint64", testCompare[uint64])
}

func testCompare[B dynbitset.Block](t *testing.T) {
	rng := testutil.NewRNG(cfg.Seed)

	for range cfg.Iterations {
		x := randomBools(rng)

		// Same value padded with zeros exercises the length tie-break.
		padded := append(append([]bool(nil), x...), make([]bool, rng.Intn(80))...)

		for _, y := range [][]bool{randomBools(rng), padded, x} {
			a, b := fromBools[B](x), fromBools[B](y)
			want := modelCompare(x, y)

			require.Equal(t, want, a.Compare(b))
			require.Equal(t, -want, b.Compare(a))
			require.Equal(t, want < 0, a.Less(b))
			require.Equal(t, want == 0, a.Equal(b))
		}
	}
}

func TestOrderingScenarios(t *testing.T) {
	empty := dynbitset.New[uint32]()
	one := dynbitset.NewWithValue[uint32](1, 1)

	assert.True(t, empty.Less(one))
	assert.False(t, one.Less(empty))
	assert.False(t, empty.Less(dynbitset.New[uint32]()))
	assert.True(t, empty.Equal(dynbitset.New[uint32]()))

	assert.True(t, dynbitset.NewSized[uint32](8).Equal(dynbitset.NewSized[uint32](8)))

	short := dynbitset.NewWithValue[uint32](4, 0b101)
	long := dynbitset.NewWithValue[uint32](40, 0b101)
	assert.False(t, short.Equal(long))
	assert.True(t, short.Less(long))
	assert.Equal(t, 1, long.Compare(short))

	assert.True(t, dynbitset.MustParse[uint8]("0111").Less(dynbitset.MustParse[uint8]("1000")))
	assert.True(t, dynbitset.MustParse[uint8]("111").Less(dynbitset.MustParse[uint8]("000000001000")))
}

func TestSubset(t *testing.T) {
	t.Run("uint8", testSubset[uint8])
	t.Run("uint64", testSubset[uint64])
}

func testSubset[B dynbitset.Block](t *testing.T) {
	rng := testutil.NewRNG(cfg.Seed)

	for range cfg.Iterations {
		x := randomBools(rng)
		a := fromBools[B](x)

		require.True(t, a.IsSubsetOf(a))
		require.False(t, a.IsProperSubsetOf(a))

		sup := a.Clone()
		for range cfg.Variations {
			if len(x) > 0 {
				sup.Set(rng.Intn(len(x)))
			}
		}
		require.True(t, a.IsSubsetOf(sup))
		require.Equal(t, !a.Equal(sup), a.IsProperSubsetOf(sup))
		require.Equal(t, a.Equal(sup), sup.IsSubsetOf(a))

		y := rng.Bools(len(x))
		b := fromBools[B](y)
		subset, intersects := true, false
		for i := range x {
			if x[i] && !y[i] {
				subset = false
			}
			if x[i] && y[i] {
				intersects = true
			}
		}
		require.Equal(t, subset, a.IsSubsetOf(b))
		require.Equal(t, intersects, a.Intersects(b))
	}
}

func TestIntersectsDifferentSizes(t *testing.T) {
	a := dynbitset.MustParse[uint8]("1000000000000000")
	b := dynbitset.MustParse[uint8]("1")

	assert.False(t, a.Intersects(b))
	a.Set(0)
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}
