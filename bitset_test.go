package dynbitset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynbitset"
	"github.com/hupe1980/dynbitset/testutil"
)

func TestConstructors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		b := dynbitset.New[uint32]()
		assert.True(t, b.Empty())
		assert.Equal(t, 0, b.Len())
		assert.Equal(t, 0, b.NumBlocks())
		assert.Equal(t, "", b.String())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var b dynbitset.Bitset[uint8]
		b.PushBack(true)
		assert.Equal(t, "1", b.String())
	})

	t.Run("Sized", func(t *testing.T) {
		b := dynbitset.NewSized[uint16](17)
		assert.Equal(t, 17, b.Len())
		assert.Equal(t, 2, b.NumBlocks())
		assert.True(t, b.None())
		requireConsistent(t, b)
	})

	t.Run("WithValue", func(t *testing.T) {
		b := dynbitset.NewWithValue[uint32](12, 0b0100010110111)
		assert.Equal(t, "100010110111", b.String())
		assert.Equal(t, 7, b.Count())
		requireConsistent(t, b)
	})

	t.Run("WithValueTruncates", func(t *testing.T) {
		b := dynbitset.NewWithValue[uint8](4, 0xff)
		assert.Equal(t, "1111", b.String())
		assert.Equal(t, []uint8{0x0f}, b.Blocks())
	})

	t.Run("WithValueSpansBlocks", func(t *testing.T) {
		b := dynbitset.NewWithValue[uint8](70, 0x8000_0000_0000_0001)
		assert.Equal(t, 2, b.Count())
		assert.True(t, b.Test(0))
		assert.True(t, b.Test(63))
		assert.False(t, b.Test(64))
		requireConsistent(t, b)
	})

	t.Run("WithValueUint64", func(t *testing.T) {
		b := dynbitset.NewWithValue[uint64](128, 3)
		assert.Equal(t, []uint64{3, 0}, b.Blocks())
	})

	t.Run("FromBlocks", func(t *testing.T) {
		b := dynbitset.FromBlocks[uint8](0x01, 0x80)
		assert.Equal(t, 16, b.Len())
		assert.Equal(t, "1000000000000001", b.String())
	})

	t.Run("NegativeSizePanics", func(t *testing.T) {
		assert.PanicsWithValue(t, &dynbitset.ErrInvalidArgument{Name: "nbits", Value: -1}, func() {
			dynbitset.NewSized[uint8](-1)
		})
	})
}

func TestBlockBits(t *testing.T) {
	assert.Equal(t, 8, dynbitset.BlockBits[uint8]())
	assert.Equal(t, 16, dynbitset.BlockBits[uint16]())
	assert.Equal(t, 32, dynbitset.BlockBits[uint32]())
	assert.Equal(t, 64, dynbitset.BlockBits[uint64]())
}

func TestResize(t *testing.T) {
	t.Run("uint8", testResize[uint8])
	t.Run("uint16", testResize[uint16])
	t.Run("uint32", testResize[uint32])
	t.Run("uint64", testResize[uint64])
}

func testResize[B dynbitset.Block](t *testing.T) {
	rng := testutil.NewRNG(cfg.Seed)

	for range cfg.Iterations {
		model := randomBools(rng)
		for range cfg.Variations {
			b := fromBools[B](model)
			size := rng.Intn(cfg.MaxBits + 1)
			fill := rng.Bool()

			b.ResizeFill(size, fill)

			want := slices.Clone(model)
			if size < len(want) {
				want = want[:size]
			}
			for len(want) < size {
				want = append(want, fill)
			}

			require.Equal(t, want, toBools(b))
			requireConsistent(t, b)
		}
	}
}

func TestResizeFillIntoPartialBlock(t *testing.T) {
	b := dynbitset.NewSized[uint8](3)
	b.ResizeFill(10, true)
	assert.Equal(t, "1111111000", b.String())

	b.Resize(12)
	assert.Equal(t, "001111111000", b.String())

	b.Resize(2)
	assert.Equal(t, "00", b.String())
	requireConsistent(t, b)
}

func TestClear(t *testing.T) {
	b := dynbitset.MustParse[uint16]("1011011")
	capBefore := b.Capacity()

	b.Clear()

	assert.True(t, b.Empty())
	assert.Equal(t, capBefore, b.Capacity())

	b.Resize(7)
	assert.True(t, b.None(), "cleared storage must not leak old bits")
}

func TestPushPop(t *testing.T) {
	t.Run("uint8", testPushPop[uint8])
	t.Run("uint64", testPushPop[uint64])
}

func testPushPop[B dynbitset.Block](t *testing.T) {
	rng := testutil.NewRNG(cfg.Seed)

	for range cfg.Iterations {
		model := randomBools(rng)
		b := fromBools[B](model)

		for range cfg.Variations {
			if rng.Bool() {
				v := rng.Bool()
				b.PushBack(v)
				model = append(model, v)
			} else {
				b.PopBack()
				if len(model) > 0 {
					model = model[:len(model)-1]
				}
			}
			require.Equal(t, model, toBools(b))
			requireConsistent(t, b)
		}
	}
}

func TestPushBackReusesSpareBits(t *testing.T) {
	b := dynbitset.New[uint8]()
	for i := range 8 {
		b.PushBack(i%2 == 0)
	}
	assert.Equal(t, 1, b.NumBlocks())
	assert.Equal(t, "01010101", b.String())

	b.PushBack(true)
	assert.Equal(t, 2, b.NumBlocks())
	assert.Equal(t, 9, b.Len())

	b.PopBack()
	assert.Equal(t, 1, b.NumBlocks())
}

func TestPopBackEmpty(t *testing.T) {
	b := dynbitset.New[uint32]()
	assert.NotPanics(t, b.PopBack)
	assert.True(t, b.Empty())
}

func TestAppend(t *testing.T) {
	t.Run("uint8", testAppend[uint8])
	t.Run("uint16", testAppend[uint16])
	t.Run("uint32", testAppend[uint32])
	t.Run("uint64", testAppend[uint64])
}

func testAppend[B dynbitset.Block](t *testing.T) {
	rng := testutil.NewRNG(cfg.Seed)
	w := dynbitset.BlockBits[B]()

	for range cfg.Iterations {
		model := randomBools(rng)
		blocks := testutil.Blocks[B](rng, rng.Intn(4))

		b := fromBools[B](model)
		b.Append(blocks...)

		want := slices.Clone(model)
		for _, blk := range blocks {
			for i := range w {
				want = append(want, blk>>i&1 == 1)
			}
		}

		require.Equal(t, want, toBools(b))
		requireConsistent(t, b)

		seq := fromBools[B](model)
		seq.AppendSeq(slices.Values(blocks))
		require.True(t, seq.Equal(b))
	}
}

func TestAppendAligned(t *testing.T) {
	b := dynbitset.NewSized[uint8](8)
	b.Append(0xff)
	assert.Equal(t, []uint8{0x00, 0xff}, b.Blocks())
}

func TestAppendUnaligned(t *testing.T) {
	b := dynbitset.MustParse[uint8]("101")
	b.Append(0b1100_0011)
	assert.Equal(t, 11, b.Len())
	assert.Equal(t, "11000011101", b.String())
	assert.Equal(t, []uint8{0b0001_1101, 0b0000_0110}, b.Blocks())
}

func TestCloneAndSwap(t *testing.T) {
	a := dynbitset.MustParse[uint16]("1100")
	b := dynbitset.MustParse[uint16]("1")

	c := a.Clone()
	c.Set(0)
	assert.Equal(t, "1100", a.String())
	assert.Equal(t, "1101", c.String())

	a.Swap(b)
	assert.Equal(t, "1", a.String())
	assert.Equal(t, "1100", b.String())
}

func TestReserveAndShrink(t *testing.T) {
	b := dynbitset.MustParse[uint8]("101")

	b.Reserve(100)
	assert.GreaterOrEqual(t, b.Capacity(), 100)
	assert.Equal(t, "101", b.String())

	b.ShrinkToFit()
	assert.Equal(t, 8, b.Capacity())
	assert.Equal(t, "101", b.String())
}
