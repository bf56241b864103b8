// Package inplaceit places small, runtime-sized runs of values in frame
// storage, falling back to the heap for large requests.
//
// The caller asks for transient storage of a given element count and uses it
// through a guard tracking initialization. Every element the consumer
// initializes is finalized exactly once before the call returns, whichever
// storage was chosen and however the guard was narrowed.
package inplaceit

import (
	"github.com/pkg/errors"

	"github.com/NotIntMan/inplace-it/buckets"
	"github.com/NotIntMan/inplace-it/guards"
)

// Strategy identifies the storage placement chosen for a request.
type Strategy uint8

// Supported placements.
const (
	StrategyInplace Strategy = iota
	StrategyAlloc
)

func (s Strategy) String() string {
	switch s {
	case StrategyInplace:
		return "inplace"
	case StrategyAlloc:
		return "alloc"
	default:
		return "unknown"
	}
}

// StrategyOf returns the placement InplaceOrAlloc chooses for size elements
// of type T. The decision depends only on the size and the element type.
func StrategyOf[T any](size int) Strategy {
	if buckets.Fits[T](size) {
		return StrategyInplace
	}
	return StrategyAlloc
}

// Inplace provides the consumer with frame storage for a single value.
// Whatever the consumer initializes is finalized before Inplace returns.
func Inplace[T, R any](consumer func(*guards.UninitializedSlot[T]) R) R {
	var mem T
	g := guards.NewUninitializedSlot(&mem)
	defer g.Discard()
	return consumer(g)
}

// InplaceOrAlloc provides the consumer with storage for size elements, placed
// in a frame bucket when the request is small enough and on the heap
// otherwise. The guard always reports exactly size elements; bucket rounding
// is trimmed off before the consumer sees it. Whatever the consumer
// initializes is finalized before InplaceOrAlloc returns, also when the
// consumer panics.
func InplaceOrAlloc[T, R any](size int, consumer func(*guards.UninitializedSlice[T]) R) R {
	if StrategyOf[T](size) == StrategyAlloc {
		return Alloc(size, consumer)
	}
	result, _ := buckets.Take(size, func(mem []T) R {
		g := guards.NewUninitializedSlice(mem)
		defer g.Discard()
		return consumer(g.Slice(0, size))
	})
	return result
}

// Alloc provides the consumer with heap storage for exactly size elements,
// bypassing bucket selection. Whatever the consumer initializes is finalized
// before Alloc returns.
func Alloc[T, R any](size int, consumer func(*guards.UninitializedSlice[T]) R) R {
	if size < 0 {
		panic(errors.Errorf("inplaceit: invalid element count %d", size))
	}
	g := guards.NewUninitializedSlice(make([]T, size))
	defer g.Discard()
	return consumer(g)
}
