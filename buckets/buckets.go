// Package buckets maps runtime element counts to the fixed menu of
// compile-time storage capacities used for frame placement.
package buckets

import (
	"unsafe"

	"github.com/pkg/errors"
)

//go:generate go run ./gen

const (
	// ExactElems is the largest count served by a bucket of exactly its size.
	ExactElems = 32

	// StepElems is the bucket granularity above ExactElems.
	StepElems = 32

	// MaxElems is the largest supported bucket capacity.
	MaxElems = 4096

	// StackBytesLimit is the maximum byte size eligible for frame placement.
	StackBytesLimit = 4096
)

// Round returns the smallest supported bucket capacity covering n elements.
// It reports false if n exceeds the largest bucket.
func Round(n int) (int, bool) {
	if n < 0 {
		panic(errors.Errorf("buckets: invalid element count %d", n))
	}
	if n <= ExactElems {
		return n, true
	}
	if n > MaxElems {
		return 0, false
	}
	return (n + StepElems - 1) / StepElems * StepElems, true
}

// Fits reports whether n elements of type T are eligible for frame placement.
// The decision depends only on n and the byte size of T.
func Fits[T any](n int) bool {
	capacity, ok := Round(n)
	if !ok {
		return false
	}
	var t T
	return uintptr(capacity)*unsafe.Sizeof(t) <= StackBytesLimit
}

// Take carves a frame buffer of the bucket capacity covering size and invokes
// the consumer with the full bucket. The buffer stays alive until the
// consumer returns. Take reports false, without invoking the consumer, when
// the request is not eligible for frame placement.
func Take[T, R any](size int, consumer func([]T) R) (R, bool) {
	if !Fits[T](size) {
		var result R
		return result, false
	}
	capacity, _ := Round(size)
	return carve[T](capacity, consumer), true
}
