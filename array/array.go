// Package array implements a simple fixed-size array. The backing
// storage is allocated in full at construction and never grows:
// pushing more elements than the array can hold is reported as an
// overflow instead of triggering a reallocation, and indexed access
// past the written region is treated as a contract violation.
//
// An Array is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally.
package array

import (
	"errors"
	"fmt"
)

// ErrOverflow signals that an overflow has happened; most probably
// more elements were pushed onto the array than its underlying size.
var ErrOverflow = errors.New("Array: overflow")

// Array is a fixed-capacity array. Elements are appended at the
// cursor position; slots past the cursor exist in storage but hold
// zero values, or stale values from earlier writes, and are not
// counted by Len.
//
// The zero value is an empty array of size zero.
type Array[T any] struct {
	elements []T
	cursor   int
}

// New constructs an Array of type T that holds size elements, all of
// them set to the zero value of T. A negative size is treated as
// zero.
func New[T any](size int) *Array[T] {
	if size < 0 {
		size = 0
	}
	return &Array[T]{
		elements: make([]T, size),
	}
}

// IsEmpty reports whether the array is empty. It is considered to be
// empty if no values have been pushed into it.
func (a *Array[T]) IsEmpty() bool {
	return a.cursor == 0
}

// Len returns the number of elements inside the array. This is in
// contrast to Size, which returns the number of elements that the
// array can hold.
func (a *Array[T]) Len() int {
	return a.cursor
}

// Size returns the size of the underlying storage. This is in
// contrast to Len, which returns the number of elements within the
// array. The size is fixed at construction and never changes.
func (a *Array[T]) Size() int {
	return len(a.elements)
}

// TryPush adds a new element to the end of the array. Pushing more
// elements than can fit into the array returns ErrOverflow and leaves
// the array unchanged.
//
// For a more convenient (but less safe) method, see Push.
func (a *Array[T]) TryPush(elem T) error {
	if a.cursor >= len(a.elements) {
		return ErrOverflow
	}

	a.elements[a.cursor] = elem
	a.cursor++

	return nil
}

// Push adds an element to the end of the array. It panics if the
// array is already full; use it only when the caller can guarantee
// enough capacity.
//
// For a non-panicking version, see TryPush.
func (a *Array[T]) Push(elem T) {
	if err := a.TryPush(elem); err != nil {
		panic(fmt.Sprintf("Array: overflow: wanted to add element %d, but size is %d", a.cursor, len(a.elements)))
	}
}

// Get returns the element at the specified index. It panics if index
// is negative or greater than Len.
//
// An index equal to Len is not rejected: when the array is not yet
// full, such an access reaches the first unoccupied slot and yields
// its current content, the zero value of T or a leftover from an
// earlier write. When the array is full, no such slot exists and the
// access faults on the storage bounds. Callers should not rely on
// this boundary behavior.
func (a *Array[T]) Get(index int) T {
	if index < 0 || index > a.cursor {
		panic(fmt.Sprintf("Array: out of bounds: wanted index %d, but length is %d", index, a.cursor))
	}
	return a.elements[index]
}

// Set replaces the value at the specified index without changing Len.
// The bounds policy is the same as for Get; writing at an index equal
// to Len does not make the slot count as occupied, and a later push
// overwrites it.
func (a *Array[T]) Set(index int, elem T) {
	if index < 0 || index > a.cursor {
		panic(fmt.Sprintf("Array: out of bounds: wanted index %d, but length is %d", index, a.cursor))
	}
	a.elements[index] = elem
}
