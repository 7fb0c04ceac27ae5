package kit

// Splice is a flat snapshot of the entries of a Map, in slot order and then
// chain order. It holds references, not copies: it stays valid only while
// the map is not modified, and freeing it never touches the entries.
type Splice[K, V any] struct {
	original *Map[K, V]
	entries  *Vector[*Entry[K, V]]
}

// NewSplice collects every entry of m.
func NewSplice[K, V any](m *Map[K, V]) *Splice[K, V] {
	entries := NewVector(m.Len(), Identity[*Entry[K, V]], NoDestroy[*Entry[K, V]])
	m.RangeEntry(func(e *Entry[K, V]) bool {
		entries.Add(e)
		return true
	})
	return &Splice[K, V]{original: m, entries: entries}
}

// Len returns the number of entries captured.
func (s *Splice[K, V]) Len() int {
	return s.entries.Len()
}

// Entry returns the entry at index. It panics if index is out of range.
func (s *Splice[K, V]) Entry(index int) *Entry[K, V] {
	assertBounds("splice", index, s.entries.Len())
	return s.entries.Get(index)
}

// Key returns the key of the entry at index.
func (s *Splice[K, V]) Key(index int) K {
	return s.Entry(index).Key
}

// Value returns the value of the entry at index.
func (s *Splice[K, V]) Value(index int) V {
	return s.Entry(index).Value
}

// All returns an iterator over the captured entries.
func (s *Splice[K, V]) All() func(yield func(int, *Entry[K, V]) bool) {
	return s.entries.All()
}

// Free drops the snapshot. The source map and its entries are unaffected.
func (s *Splice[K, V]) Free() {
	s.entries.Free()
	s.original = nil
}
