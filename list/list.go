// Package list implements a growable, array-backed ordered list.
package list

import (
	"errors"
	"fmt"
	"github.com/emirpasic/gods/v2/containers"
	"github.com/stretchr/testify/require"
	"github.com/xenowits/dynarray/capacity"
	"github.com/xenowits/dynarray/iterator"
	"golang.org/x/exp/slices"
	"iter"
	"strings"
	"testing"
)

var ErrIndexOutOfRange = errors.New("index out of range")

var _ containers.Container[int] = (*List[int])(nil)

// List is an ordered sequence of elements stored contiguously in slots [0, size)
// of a backing store it owns. The store grows and shrinks with the configured
// capacity.Policy. A List is not safe for concurrent use. The zero value is an
// empty list with the default capacity and policy.
type List[T comparable] struct {
	elems   []T // Backing store, len(elems) is the capacity
	size    int
	opts    capacity.Options
	version uint64 // Bumped on every mutation, checked by iterators
}

// New returns an empty list. Without options the initial capacity is 10.
func New[T comparable](opts ...capacity.Option) (*List[T], error) {
	o, err := capacity.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	return &List[T]{
		elems: make([]T, o.Initial),
		opts:  o,
	}, nil
}

// NewForT returns a new list for use in testing.
func NewForT[T comparable](t *testing.T, opts ...capacity.Option) *List[T] {
	t.Helper()

	l, err := New[T](opts...)
	require.NoError(t, err)

	return l
}

// From returns an independent copy of src with the same elements, capacity and options.
func From[T comparable](src *List[T]) *List[T] {
	return &List[T]{
		elems: slices.Clone(src.elems),
		size:  src.size,
		opts:  src.opts,
	}
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.size
}

// Capacity returns the number of allocated slots.
func (l *List[T]) Capacity() int {
	return len(l.elems)
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Empty is IsEmpty under the name containers.Container expects.
func (l *List[T]) Empty() bool {
	return l.IsEmpty()
}

// Contains reports whether e is in the list.
func (l *List[T]) Contains(e T) bool {
	return slices.Contains(l.elems[:l.size], e)
}

// Append adds e at the end. It reports whether the backing store was reallocated,
// which invalidates open iterators. It fails with capacity.ErrCapacityExceeded only
// when the list is full at its configured maximum.
func (l *List[T]) Append(e T) (bool, error) {
	l.lazyInit()

	if l.size == len(l.elems) {
		return false, fmt.Errorf("%w: size %d, max %d", capacity.ErrCapacityExceeded, l.size, l.opts.Max)
	}

	l.elems[l.size] = e
	l.size++
	l.version++

	if !l.opts.Policy.ShouldGrow(l.size, len(l.elems)) {
		return false, nil
	}

	next := l.opts.Policy.NextGrow(len(l.elems))
	if l.opts.Bounded() {
		next = min(next, l.opts.Max)
	}

	if next <= len(l.elems) {
		return false, nil
	}

	l.elems = capacity.Resize(l.elems, l.size, next)

	return true, nil
}

// Insert validates index against [0, Size()] and then appends e. The element
// always lands at the end of the list regardless of index.
func (l *List[T]) Insert(index int, e T) (bool, error) {
	if index < 0 || index > l.size {
		return false, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}

	return l.Append(e)
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}

	return l.elems[index], nil
}

// RemoveAt removes and returns the element at index. Later elements shift one
// slot toward the front.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := l.checkIndex(index); err != nil {
		return zero, err
	}

	removed := l.elems[index]
	slices.Delete(l.elems[:l.size], index, index+1)
	l.elems[l.size-1] = zero
	l.size--
	l.version++

	// The list never shrinks below the capacity it was created with.
	floor := l.opts.Initial
	if l.opts.Policy.ShouldShrink(l.size, len(l.elems), floor) {
		l.elems = capacity.Resize(l.elems, l.size, l.opts.Policy.NextShrink(len(l.elems), floor))
	}

	return removed, nil
}

// Clear removes all elements and restores the initial capacity.
func (l *List[T]) Clear() {
	l.lazyInit()

	l.elems = make([]T, l.opts.Initial)
	l.size = 0
	l.version++
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.elems[:l.size])
}

// Iterator returns a forward iterator in insertion order.
func (l *List[T]) Iterator() *iterator.Iterator[T] {
	return iterator.New(iterator.Source[T]{
		Len:     func() int { return l.size },
		At:      func(i int) T { return l.elems[i] },
		Version: func() uint64 { return l.version },
	})
}

// All returns a range-over-func sequence of the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.elems[i]) {
				return
			}
		}
	}
}

// String renders the elements as "[a, b, c]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.elems[:l.size] {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')

	return b.String()
}

// lazyInit gives a zero value List the default options and backing store.
func (l *List[T]) lazyInit() {
	if l.elems != nil {
		return
	}

	o, err := capacity.Resolve()
	if err != nil {
		panic(err) // Defaults always resolve.
	}

	l.opts = o
	l.elems = make([]T, o.Initial)
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}

	return nil
}
