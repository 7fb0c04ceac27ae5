package kit

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Vector is a growable sequence that owns its elements. Elements added with
// Add and Set are owned by the vector and released through its destroy
// function when overwritten, deleted or freed.
type Vector[T any] struct {
	data    []T
	clone   func(T) T
	destroy func(T)
}

// NewVector returns an empty vector. clone and destroy are mandatory; use
// Identity and NoDestroy for plain values.
func NewVector[T any](capacity int, clone func(T) T, destroy func(T)) *Vector[T] {
	assertNotNil(clone != nil, "clone")
	assertNotNil(destroy != nil, "destroy")
	return &Vector[T]{
		data:    make([]T, 0, max(capacity, 0)),
		clone:   clone,
		destroy: destroy,
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector[T]) Cap() int { return cap(v.data) }

func (v *Vector[T]) reserve(need int) {
	if need <= cap(v.data) {
		return
	}
	data := make([]T, len(v.data), grownCap[T](cap(v.data), need))
	copy(data, v.data)
	v.data = data
}

// Add appends e and takes ownership of it.
func (v *Vector[T]) Add(e T) {
	v.reserve(len(v.data) + 1)
	v.data = append(v.data, e)
}

// AddClone appends a clone of e; the caller keeps ownership of e.
func (v *Vector[T]) AddClone(e T) {
	v.Add(v.clone(e))
}

// Set stores e at index, destroying the element it replaces. An index equal
// to Len appends.
func (v *Vector[T]) Set(index int, e T) {
	if index == len(v.data) {
		v.Add(e)
		return
	}
	assertBounds("vector", index, len(v.data))
	v.destroy(v.data[index])
	v.data[index] = e
}

// SetClone stores a clone of e at index.
func (v *Vector[T]) SetClone(index int, e T) {
	v.Set(index, v.clone(e))
}

// Get returns a reference to the element at index; the vector keeps
// ownership.
func (v *Vector[T]) Get(index int) T {
	assertBounds("vector", index, len(v.data))
	return v.data[index]
}

// GetClone returns a clone of the element at index, owned by the caller.
func (v *Vector[T]) GetClone(index int) T {
	return v.clone(v.Get(index))
}

// Remove detaches the element at index and hands ownership to the caller.
func (v *Vector[T]) Remove(index int) T {
	assertBounds("vector", index, len(v.data))
	e := v.data[index]
	copy(v.data[index:], v.data[index+1:])
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return e
}

// Delete removes and destroys the element at index.
func (v *Vector[T]) Delete(index int) {
	v.destroy(v.Remove(index))
}

// Clone returns a deep copy using the vector's clone function.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := NewVector[T](cap(v.data), v.clone, v.destroy)
	for _, e := range v.data {
		clone.data = append(clone.data, v.clone(e))
	}
	return clone
}

// Free destroys every element and releases the backing storage.
func (v *Vector[T]) Free() {
	for _, e := range v.data {
		v.destroy(e)
	}
	v.data = nil
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (v *Vector[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(v.data, f)
}

// SortFunc sorts the elements in place using cmp.
func (v *Vector[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(v.data, cmp)
}

// Slice returns a read-only window of count elements starting at start.
func (v *Vector[T]) Slice(start, count int) VectorSplice[T] {
	assertRange("vector", start, count, len(v.data))
	return VectorSplice[T]{original: v, start: start, count: count}
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i, e := range v.data {
			if !yield(i, e) {
				return
			}
		}
	}
}

// SortVector sorts a vector of ordered elements ascending.
func SortVector[T constraints.Ordered](v *Vector[T]) {
	slices.Sort(v.data)
}

// VectorSplice is a non-owning window into a Vector.
type VectorSplice[T any] struct {
	original *Vector[T]
	start    int
	count    int
}

// Len returns the window length.
func (s VectorSplice[T]) Len() int { return s.count }

// Get returns the element at index within the window.
func (s VectorSplice[T]) Get(index int) T {
	assertBounds("vector splice", index, s.count)
	return s.original.Get(s.start + index)
}
