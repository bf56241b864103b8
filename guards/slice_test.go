package guards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceReleasesEveryElementExactlyOnce(t *testing.T) {
	requireT := require.New(t)

	var hits int
	g := NewUninitializedSlice(make([]tracked, 5))

	s := g.Init(func(index int) tracked {
		return tracked{value: index, hits: &hits}
	})
	requireT.Equal(5, s.Len())
	requireT.Equal(0, hits)

	g.Discard()
	requireT.Equal(5, hits)

	g.Discard()
	s.Release()
	requireT.Equal(5, hits)
}

func TestSliceNoInitNoDrops(t *testing.T) {
	requireT := require.New(t)

	var hits int
	mem := make([]tracked, 8)
	for i := range mem {
		mem[i].hits = &hits
	}

	g := NewUninitializedSlice(mem)
	g.Discard()
	requireT.Equal(0, hits)
}

func TestSliceInitOrderAscending(t *testing.T) {
	requireT := require.New(t)

	visited := make([]int, 0, 6)
	g := NewUninitializedSlice(make([]int, 6))
	g.Init(func(index int) int {
		visited = append(visited, index)
		return index
	})

	requireT.Equal([]int{0, 1, 2, 3, 4, 5}, visited)
}

func TestSubsliceMapsToParentSlots(t *testing.T) {
	requireT := require.New(t)

	backing := make([]int, 10)
	g := NewUninitializedSlice(backing)

	sub := g.Slice(3, 7)
	requireT.Equal(4, sub.Len())

	sub.Init(func(index int) int {
		return index + 100
	})

	requireT.Equal([]int{0, 0, 0, 100, 101, 102, 103, 0, 0, 0}, backing)
}

func TestSubsliceOutOfRangePanics(t *testing.T) {
	requireT := require.New(t)

	requireT.Panics(func() {
		NewUninitializedSlice(make([]int, 10)).Slice(3, 11)
	})
	requireT.Panics(func() {
		NewUninitializedSlice(make([]int, 10)).Slice(5, 2)
	})
	requireT.Panics(func() {
		NewUninitializedSlice(make([]int, 10)).Slice(-1, 4)
	})
}

func TestSliceReuseAfterConsumePanics(t *testing.T) {
	requireT := require.New(t)

	g := NewUninitializedSlice(make([]int, 4))
	g.Slice(0, 2)
	requireT.Panics(func() {
		g.Slice(0, 1)
	})

	g2 := NewUninitializedSlice(make([]int, 4))
	g2.Init(func(index int) int { return index })
	requireT.Panics(func() {
		g2.Init(func(index int) int { return index })
	})
}

func TestInitCopyOf(t *testing.T) {
	requireT := require.New(t)

	source := []int{3, 1, 4, 1, 5}
	backing := make([]int, 8)
	for i := range backing {
		backing[i] = -1
	}

	g := NewUninitializedSlice(backing)
	s := g.InitCopyOf(source)

	requireT.Equal(5, s.Len())
	requireT.Equal(source, s.Items())

	// Slots beyond the source stay untouched.

	requireT.Equal([]int{-1, -1, -1}, backing[5:])
}

func TestInitCopyOfTooLongPanics(t *testing.T) {
	requireT := require.New(t)

	requireT.Panics(func() {
		NewUninitializedSlice(make([]int, 3)).InitCopyOf([]int{1, 2, 3, 4})
	})
}

func TestDiscardReachesDerivedGuard(t *testing.T) {
	requireT := require.New(t)

	var hits int
	g := NewUninitializedSlice(make([]tracked, 10))

	g.Slice(2, 9).Init(func(index int) tracked {
		return tracked{value: index, hits: &hits}
	})

	g.Discard()
	requireT.Equal(7, hits)
}

func TestSliceAccessAfterReleasePanics(t *testing.T) {
	requireT := require.New(t)

	g := NewUninitializedSlice(make([]int, 4))
	s := g.Init(func(index int) int { return index })
	s.Release()

	requireT.Panics(func() {
		s.Items()
	})
}

func TestSliceReleaseClearsStorage(t *testing.T) {
	requireT := require.New(t)

	backing := make([]int, 4)
	g := NewUninitializedSlice(backing)
	s := g.Init(func(index int) int { return index + 1 })
	requireT.Equal([]int{1, 2, 3, 4}, backing)

	s.Release()
	requireT.Equal([]int{0, 0, 0, 0}, backing)
}
