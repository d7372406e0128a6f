// Package iterator provides a single-pass forward cursor over a container's live contents.
package iterator

import (
	"errors"
	"fmt"
)

var (
	ErrNoMoreElements         = errors.New("no more elements")
	ErrConcurrentModification = errors.New("container modified during iteration")
)

// Source is the read-only view a container hands to its iterators.
type Source[T any] struct {
	// Len returns the container's current size.
	Len func() int
	// At returns the element at traversal position i, 0 <= i < Len().
	At func(i int) T
	// Version returns a counter the container bumps on every mutation.
	Version func() uint64
}

// Iterator walks a Source from position 0 to Len(). It is not a snapshot: HasNext
// consults the live size. Next fails fast once the container has been mutated
// after the iterator was created.
type Iterator[T any] struct {
	src     Source[T]
	version uint64
	cursor  int
}

// New returns an iterator positioned before the first element of src.
func New[T any](src Source[T]) *Iterator[T] {
	return &Iterator[T]{
		src:     src,
		version: src.Version(),
	}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.src.Len()
}

// Next returns the element at the cursor and advances it.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if v := it.src.Version(); v != it.version {
		return zero, fmt.Errorf("%w: version %d, expected %d", ErrConcurrentModification, v, it.version)
	}

	if !it.HasNext() {
		return zero, fmt.Errorf("%w: cursor %d, size %d", ErrNoMoreElements, it.cursor, it.src.Len())
	}

	e := it.src.At(it.cursor)
	it.cursor++

	return e, nil
}
