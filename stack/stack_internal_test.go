package stack

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPopClearsSlot(t *testing.T) {
	s := NewForT[*int](t)

	v := 1
	s.Push(&v)
	s.Push(&v)

	_, ok := s.Pop()
	require.True(t, ok)
	require.Nil(t, s.data[1])
	require.NotNil(t, s.data[0])

	_, ok = s.Pop()
	require.True(t, ok)
	for _, e := range s.data {
		require.Nil(t, e)
	}
}
