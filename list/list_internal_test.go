package list

import (
	"github.com/stretchr/testify/require"
	"github.com/xenowits/dynarray/capacity"
	"testing"
)

// requireInvariants checks 0 <= size <= capacity and that no slot past size retains a value.
func requireInvariants[T comparable](t *testing.T, l *List[T]) {
	t.Helper()

	require.GreaterOrEqual(t, l.size, 0)
	require.LessOrEqual(t, l.size, len(l.elems))
	require.GreaterOrEqual(t, len(l.elems), 1)

	var zero T
	for i := l.size; i < len(l.elems); i++ {
		require.Equal(t, zero, l.elems[i], "stale slot %d", i)
	}
}

func TestInvariants(t *testing.T) {
	l := NewForT[*int](t)
	requireInvariants(t, l)

	ptrs := make([]*int, 64)
	for i := range ptrs {
		v := i
		ptrs[i] = &v
	}

	for _, p := range ptrs {
		_, err := l.Append(p)
		require.NoError(t, err)
		requireInvariants(t, l)
	}

	// Alternate removing from the middle and the front.
	for i := 0; !l.IsEmpty(); i++ {
		index := 0
		if i%2 == 0 {
			index = l.size / 2
		}

		_, err := l.RemoveAt(index)
		require.NoError(t, err)
		requireInvariants(t, l)
	}

	require.Equal(t, 10, len(l.elems))
}

func TestResizeReplacesStore(t *testing.T) {
	l := NewForT[int](t, capacity.WithInitial(1))
	before := l.elems

	resized, err := l.Append(1)
	require.NoError(t, err)
	require.True(t, resized)
	require.Equal(t, 2, len(l.elems))

	l.elems[0] = 7
	require.Equal(t, 1, before[0])
}
