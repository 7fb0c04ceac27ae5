package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	o := newOwnership()
	e := NewEntry("k", "v")
	c := e.Clone(o.clone, o.clone)
	require.NotSame(t, e, c)
	require.Equal(t, "k", c.Key)
	require.Equal(t, "v", c.Value)
	require.Equal(t, map[string]int{"k": 1, "v": 1}, o.cloned)

	e.Destroy(o.destroy, o.destroy)
	require.Equal(t, map[string]int{"k": 1, "v": 1}, o.destroyed)
	require.Empty(t, e.Key)
	require.Equal(t, "k", c.Key)
}

func TestEntrySet_MinCapacity(t *testing.T) {
	for _, c := range []int{-1, 0, 1, 2} {
		s := newEntrySet[int, int](c, DefaultLoadFactor)
		require.Equal(t, minEntrySetCapacity, s.capacity())
	}
	require.Equal(t, 7, newEntrySet[int, int](7, DefaultLoadFactor).capacity())
}

func TestEntrySet_Set(t *testing.T) {
	s := newEntrySet[int, int](2, DefaultLoadFactor)

	require.False(t, s.set(0, NewList(NewEntry(0, 0)), true, 0))
	require.Equal(t, 1, s.count)

	// Replacing an occupied slot does not change the slot count.
	require.False(t, s.set(0, NewList(NewEntry(2, 2)), false, 1))
	require.Equal(t, 1, s.count)

	// 1/0.75 + 1 > 2
	require.False(t, s.set(1, NewList(NewEntry(1, 1)), false, 1))
	s.clear(1)
	require.True(t, s.set(1, NewList(NewEntry(1, 1)), true, 1))
	require.Equal(t, 4, s.capacity())
	require.Equal(t, 2, s.count)
	require.NotNil(t, s.get(0))
	require.NotNil(t, s.get(1))
	require.Nil(t, s.get(2))
	require.Nil(t, s.get(3))

	s.clear(0)
	s.clear(0)
	require.Equal(t, 1, s.count)
}

func TestEntrySet_CloneAndDestroy(t *testing.T) {
	o := newOwnership()
	keys, values := o.keys(constHash), o.values()
	s := newEntrySet[string, string](4, DefaultLoadFactor)
	chain := NewList(NewEntry("a", "1"))
	chain.PushTail(NewEntry("b", "2"))
	chain.PushTail(NewEntry("c", "3"))
	s.set(2, chain, false, 0)

	c := s.clone(keys, values)
	require.Equal(t, s.capacity(), c.capacity())
	require.Equal(t, 1, c.count)
	require.Nil(t, c.get(0))
	cloned := c.get(2)
	require.Equal(t, 3, cloned.Len())
	for i, e := range cloned.All() {
		require.NotSame(t, chain.At(i), e)
		require.Equal(t, chain.At(i).Key, e.Key)
	}

	// Scaffolding only: entries survive.
	moved := chain.At(1)
	s.destroy(keys, values, false)
	require.Empty(t, o.destroyed)
	require.Equal(t, "b", moved.Key)
	require.Equal(t, 0, s.count)

	c.destroy(keys, values, true)
	require.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "1": 1, "2": 1, "3": 1}, o.destroyed)
}
