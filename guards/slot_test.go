package guards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotReleasesExactlyOnce(t *testing.T) {
	requireT := require.New(t)

	var hits int
	var mem tracked
	g := NewUninitializedSlot(&mem)

	s := g.Init(tracked{value: 7, hits: &hits})
	requireT.Equal(7, s.Get().value)
	requireT.Equal(0, hits)

	g.Discard()
	requireT.Equal(1, hits)

	// Releasing again must not finalize again.

	g.Discard()
	s.Release()
	requireT.Equal(1, hits)
}

func TestSlotDiscardWithoutInit(t *testing.T) {
	requireT := require.New(t)

	var hits int
	var mem tracked
	mem.hits = &hits
	g := NewUninitializedSlot(&mem)

	g.Discard()
	requireT.Equal(0, hits)
}

func TestSlotReuseAfterInitPanics(t *testing.T) {
	requireT := require.New(t)

	var mem int
	g := NewUninitializedSlot(&mem)
	g.Init(42)

	requireT.Panics(func() {
		g.Init(43)
	})
}

func TestSlotAccessAfterReleasePanics(t *testing.T) {
	requireT := require.New(t)

	var mem int
	g := NewUninitializedSlot(&mem)
	s := g.Init(42)
	s.Release()

	requireT.Panics(func() {
		s.Get()
	})
	requireT.Panics(func() {
		s.Bytes()
	})
}

func TestSlotBytes(t *testing.T) {
	requireT := require.New(t)

	var mem uint64
	g := NewUninitializedSlot(&mem)
	s := g.Init(^uint64(0))

	b := s.Bytes()
	requireT.Len(b, 8)
	for _, v := range b {
		requireT.Equal(byte(0xff), v)
	}
}

func TestSlotReleaseClearsStorage(t *testing.T) {
	requireT := require.New(t)

	var mem int
	g := NewUninitializedSlot(&mem)
	s := g.Init(42)
	requireT.Equal(42, mem)

	s.Release()
	requireT.Equal(0, mem)
}
