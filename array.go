package kit

// Array is a growable sequence of plain values. Unlike Vector it owns no
// resources: elements are copied in and out and never destroyed.
type Array[T any] struct {
	data []T
}

// NewArray returns an empty array able to hold capacity elements before
// reallocating.
func NewArray[T any](capacity int) *Array[T] {
	return &Array[T]{data: make([]T, 0, max(capacity, 0))}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Cap returns the number of elements the array can hold without growing.
func (a *Array[T]) Cap() int { return cap(a.data) }

func (a *Array[T]) reserve(need int) {
	if need <= cap(a.data) {
		return
	}
	data := make([]T, len(a.data), grownCap[T](cap(a.data), need))
	copy(data, a.data)
	a.data = data
}

// Append adds v at the end.
func (a *Array[T]) Append(v T) {
	a.reserve(len(a.data) + 1)
	a.data = append(a.data, v)
}

// Set overwrites the element at index. An index equal to Len appends.
// It panics if index is beyond Len.
func (a *Array[T]) Set(index int, v T) {
	if index == len(a.data) {
		a.Append(v)
		return
	}
	assertBounds("array", index, len(a.data))
	a.data[index] = v
}

// Get returns the element at index. It panics if index is out of range.
func (a *Array[T]) Get(index int) T {
	assertBounds("array", index, len(a.data))
	return a.data[index]
}

// Remove deletes the element at index, shifting later elements down.
func (a *Array[T]) Remove(index int) T {
	assertBounds("array", index, len(a.data))
	v := a.data[index]
	copy(a.data[index:], a.data[index+1:])
	var zero T
	a.data[len(a.data)-1] = zero
	a.data = a.data[:len(a.data)-1]
	return v
}

// Clone returns an independent copy.
func (a *Array[T]) Clone() *Array[T] {
	clone := NewArray[T](cap(a.data))
	clone.data = append(clone.data, a.data...)
	return clone
}

// Free releases the backing storage.
func (a *Array[T]) Free() {
	a.data = nil
}

// Slice returns a read-only window of count elements starting at start.
func (a *Array[T]) Slice(start, count int) ArraySplice[T] {
	assertRange("array", start, count, len(a.data))
	return ArraySplice[T]{original: a, start: start, count: count}
}

// All returns an iterator over index/element pairs.
func (a *Array[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ArraySplice is a window into an Array. It is valid until the array is
// shrunk below the window's end.
type ArraySplice[T any] struct {
	original *Array[T]
	start    int
	count    int
}

// Len returns the window length.
func (s ArraySplice[T]) Len() int { return s.count }

// Get returns the element at index within the window.
func (s ArraySplice[T]) Get(index int) T {
	assertBounds("array splice", index, s.count)
	return s.original.Get(s.start + index)
}
