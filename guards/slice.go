package guards

import (
	"github.com/pkg/errors"
)

// UninitializedSlice guards a contiguous run of reserved slots. Guards
// derived from the same storage share one release tracker, so a provider
// discarding the root guard reaches whatever the consumer initialized,
// no matter how the guard was narrowed in between.
type UninitializedSlice[T any] struct {
	mem   []T
	state *sliceState[T]
	spent bool
}

type sliceState[T any] struct {
	init *Slice[T]
}

// NewUninitializedSlice wraps reserved storage for a run of values. It is
// meant to be called by storage providers, not by ordinary consumers.
func NewUninitializedSlice[T any](mem []T) *UninitializedSlice[T] {
	return &UninitializedSlice[T]{mem: mem, state: &sliceState[T]{}}
}

// Len returns the number of reserved slots.
func (g *UninitializedSlice[T]) Len() int {
	return len(g.mem)
}

// Slice narrows the guard to the [start, end) range of its slots without
// copying. The receiver is consumed. A range reaching outside the guard is a
// contract violation and panics, it is never clamped.
func (g *UninitializedSlice[T]) Slice(start, end int) *UninitializedSlice[T] {
	g.consume()
	if start < 0 || start > end || end > len(g.mem) {
		panic(errors.Errorf("guards: range [%d:%d] outside of %d slots", start, end, len(g.mem)))
	}
	return &UninitializedSlice[T]{mem: g.mem[start:end], state: g.state}
}

// Init fills every slot using the index function, in ascending index order,
// and transitions the guard to its initialized form. The receiver is consumed
// and panics on further use.
func (g *UninitializedSlice[T]) Init(init func(index int) T) *Slice[T] {
	g.consume()
	for i := range g.mem {
		g.mem[i] = init(i)
	}
	s := &Slice[T]{mem: g.mem}
	g.state.init = s
	return s
}

// InitCopyOf fills exactly len(source) slots with copies of the source
// elements. Slots beyond the source stay reserved and are never touched.
// A source longer than the guard is a contract violation and panics.
func (g *UninitializedSlice[T]) InitCopyOf(source []T) *Slice[T] {
	if len(source) > len(g.mem) {
		panic(errors.Errorf("guards: source of %d elements does not fit in %d slots", len(source), len(g.mem)))
	}
	return g.Slice(0, len(source)).Init(func(index int) T {
		return source[index]
	})
}

// Discard releases the initialized guard derived from this storage, if any.
// Storage providers defer it right after creating the root guard.
func (g *UninitializedSlice[T]) Discard() {
	if g.state.init != nil {
		g.state.init.Release()
	}
}

func (g *UninitializedSlice[T]) consume() {
	if g.spent {
		panic(errors.New("guards: slice guard already consumed"))
	}
	g.spent = true
}

// Slice guards a contiguous run of live values.
type Slice[T any] struct {
	mem      []T
	released bool
}

// Len returns the number of live values.
func (s *Slice[T]) Len() int {
	return len(s.mem)
}

// Items returns the live values for reading and writing.
func (s *Slice[T]) Items() []T {
	if s.released {
		panic(errors.New("guards: slice used after release"))
	}
	return s.mem
}

// Release finalizes every value exactly once, front to back, and clears the
// storage. Releasing again is a no-op.
func (s *Slice[T]) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := range s.mem {
		dropValue(&s.mem[i])
	}
	clear(s.mem)
}
