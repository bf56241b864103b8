package guards

import (
	"github.com/outofforest/photon"
	"github.com/pkg/errors"
)

// UninitializedSlot guards reserved storage for a single value. No live value
// exists behind it until Init is called.
type UninitializedSlot[T any] struct {
	mem   photon.Union[*T]
	next  *Slot[T]
	spent bool
}

// NewUninitializedSlot wraps reserved storage for one value. It is meant to
// be called by storage providers, not by ordinary consumers.
func NewUninitializedSlot[T any](mem *T) *UninitializedSlot[T] {
	return &UninitializedSlot[T]{mem: photon.NewFromValue(mem)}
}

// Init writes the value into the slot and transitions the guard to its
// initialized form. The receiver is consumed and panics on further use.
func (g *UninitializedSlot[T]) Init(value T) *Slot[T] {
	if g.spent {
		panic(errors.New("guards: slot guard already consumed"))
	}
	g.spent = true
	*g.mem.V = value
	g.next = &Slot[T]{mem: g.mem}
	return g.next
}

// Discard releases the initialized guard derived from this one, if any.
// Storage providers defer it right after creating the guard.
func (g *UninitializedSlot[T]) Discard() {
	if g.next != nil {
		g.next.Release()
	}
}

// Slot guards a single live value.
type Slot[T any] struct {
	mem      photon.Union[*T]
	released bool
}

// Get returns the live value for reading and writing.
func (s *Slot[T]) Get() *T {
	if s.released {
		panic(errors.New("guards: slot used after release"))
	}
	return s.mem.V
}

// Bytes returns the raw bytes backing the slot.
func (s *Slot[T]) Bytes() []byte {
	if s.released {
		panic(errors.New("guards: slot used after release"))
	}
	return s.mem.B
}

// Release finalizes the value exactly once and clears the slot. Releasing
// again is a no-op.
func (s *Slot[T]) Release() {
	if s.released {
		return
	}
	s.released = true
	dropValue(s.mem.V)
	var zero T
	*s.mem.V = zero
}
