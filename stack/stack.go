// Package stack implements an array-backed LIFO stack that grows on push and
// shrinks on pop, never below the policy floor.
package stack

import (
	"fmt"
	"github.com/emirpasic/gods/v2/containers"
	"github.com/stretchr/testify/require"
	"github.com/xenowits/dynarray/capacity"
	"github.com/xenowits/dynarray/iterator"
	"iter"
	"strings"
	"testing"
)

var _ containers.Container[int] = (*Stack[int])(nil)

// New returns an empty stack. Only capacity.WithInitial and capacity.WithPolicy
// apply, a stack has no hard cap since Push never fails.
func New[T any](opts ...capacity.Option) (*Stack[T], error) {
	o, err := capacity.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	if o.Bounded() {
		return nil, fmt.Errorf("%w: stack does not support a max capacity", capacity.ErrInvalidCapacity)
	}

	return &Stack[T]{
		data: make([]T, o.Initial),
		opts: o,
	}, nil
}

// NewForT returns a new stack for use in testing.
func NewForT[T any](t *testing.T, opts ...capacity.Option) *Stack[T] {
	t.Helper()

	s, err := New[T](opts...)
	require.NoError(t, err)

	return s
}

// Stack is a last-in-first-out container. The top is always slot size-1.
// The zero value is an empty stack with the default capacity and policy.
type Stack[T any] struct {
	data    []T // Backing store, len(data) is the capacity
	size    int
	opts    capacity.Options
	version uint64
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Empty is IsEmpty under the name containers.Container expects.
func (s *Stack[T]) Empty() bool {
	return s.IsEmpty()
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) Capacity() int {
	return len(s.data)
}

// Push places e on top, growing the store first if the push would reach the high water mark.
func (s *Stack[T]) Push(e T) {
	s.lazyInit()

	if s.opts.Policy.ShouldGrow(s.size+1, len(s.data)) {
		s.data = capacity.Resize(s.data, s.size, s.opts.Policy.NextGrow(len(s.data)))
	}

	s.data[s.size] = e
	s.size++
	s.version++
}

// Pop removes and returns the top element. It returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}

	e := s.data[s.size-1]
	s.data[s.size-1] = zero
	s.size--
	s.version++

	floor := s.opts.Policy.Floor
	if s.opts.Policy.ShouldShrink(s.size, len(s.data), floor) {
		s.data = capacity.Resize(s.data, s.size, s.opts.Policy.NextShrink(len(s.data), floor))
	}

	return e, true
}

// Peek returns the top element without removing it. It returns false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}

	return s.data[s.size-1], true
}

// Clear removes all elements and restores the initial capacity.
func (s *Stack[T]) Clear() {
	s.lazyInit()

	s.data = make([]T, s.opts.Initial)
	s.size = 0
	s.version++
}

// lazyInit gives a zero value Stack the default options and backing store.
func (s *Stack[T]) lazyInit() {
	if s.data != nil {
		return
	}

	o, err := capacity.Resolve()
	if err != nil {
		panic(err) // Defaults always resolve.
	}

	s.opts = o
	s.data = make([]T, o.Initial)
}

// Values returns a copy of the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	vals := make([]T, 0, s.size)
	for e := range s.All() {
		vals = append(vals, e)
	}

	return vals
}

// Iterator returns a forward iterator from top to bottom.
func (s *Stack[T]) Iterator() *iterator.Iterator[T] {
	return iterator.New(iterator.Source[T]{
		Len:     func() int { return s.size },
		At:      func(i int) T { return s.data[s.size-1-i] },
		Version: func() uint64 { return s.version },
	})
}

// All returns a range-over-func sequence from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// String renders the elements top to bottom as "[c, b, a]".
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := s.size - 1; i >= 0; i-- {
		fmt.Fprint(&b, s.data[i])
		if i > 0 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')

	return b.String()
}
