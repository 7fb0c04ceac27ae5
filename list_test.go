package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func listValues[T any](l *List[T]) []T {
	var values []T
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}

func TestList_Push(t *testing.T) {
	l := NewList(2)
	require.Equal(t, 1, l.Len())
	require.False(t, l.IsHeadless())
	l.PushTail(3)
	l.PushHead(1)
	require.Equal(t, []int{1, 2, 3}, listValues(l))
	require.Equal(t, 1, l.Head().Value)
	require.Equal(t, 3, l.Tail().Value)
	require.Nil(t, l.Tail().Next())
	require.Equal(t, 2, l.At(1))

	e := NewEmptyList[int]()
	require.True(t, e.IsHeadless())
	e.PushHead(5)
	require.Same(t, e.Head(), e.Tail())
}

func TestList_Pop(t *testing.T) {
	l := NewEmptyList[int]()
	require.True(t, l.PopHead().IsNone())
	require.True(t, l.PopTail().IsNone())

	for i := 0; i < 5; i++ {
		l.PushTail(i)
	}
	require.Equal(t, 2, l.Pop(2))
	require.Equal(t, []int{0, 1, 3, 4}, listValues(l))
	require.Equal(t, 4, l.Pop(3))
	require.Equal(t, 3, l.Tail().Value)
	l.PushTail(9)
	require.Equal(t, []int{0, 1, 3, 9}, listValues(l))

	require.Equal(t, 0, l.PopHead().Unwrap())
	require.Equal(t, 9, l.PopTail().Unwrap())
	require.Equal(t, []int{1, 3}, listValues(l))
	require.Equal(t, 1, l.Pop(0))
	require.Equal(t, 3, l.PopTail().Unwrap())
	require.True(t, l.IsHeadless())
	require.Nil(t, l.Tail())
	require.Equal(t, 0, l.Len())

	requireAssertion(t, "illegal bound: access of list of size 0 at index 0", func() { l.Pop(0) })
	requireAssertion(t, "illegal bound", func() { l.At(0) })
}

func TestList_Delete(t *testing.T) {
	var destroyed []int
	destroy := func(v int) { destroyed = append(destroyed, v) }
	l := NewEmptyList[int]()
	for i := 0; i < 5; i++ {
		l.PushTail(i)
	}
	l.DeleteHead(destroy)
	l.DeleteTail(destroy)
	l.Delete(1, destroy)
	require.Equal(t, []int{0, 4, 2}, destroyed)
	require.Equal(t, []int{1, 3}, listValues(l))

	l.Free(destroy)
	require.Equal(t, []int{0, 4, 2, 1, 3}, destroyed)
	require.True(t, l.IsHeadless())

	// Deleting from an empty list is a no-op.
	l.DeleteHead(destroy)
	l.DeleteTail(destroy)
	require.Len(t, destroyed, 5)
}

func TestList_Clone(t *testing.T) {
	l := NewList(1)
	l.PushTail(2)
	l.PushTail(3)
	c := l.Clone(func(v int) int { return v * 10 })
	require.Equal(t, []int{10, 20, 30}, listValues(c))
	require.Equal(t, 30, c.Tail().Value)
	c.PopHead()
	require.Equal(t, []int{1, 2, 3}, listValues(l))

	l.Free(nil)
	require.Equal(t, 0, l.Len())
}
