package kit

// Entry is a key/value pair owned by a Map.
//
// Entries returned by Map.GetEntry and Splice are references into the map:
// they may be read, and Value may be replaced, but Key must not be modified
// in a way that changes its hash or equality.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// NewEntry returns an entry that takes ownership of key and value.
func NewEntry[K, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{Key: key, Value: value}
}

// Destroy releases the key and then the value.
func (e *Entry[K, V]) Destroy(destroyKey func(K), destroyValue func(V)) {
	destroyKey(e.Key)
	destroyValue(e.Value)
	var (
		k K
		v V
	)
	e.Key, e.Value = k, v
}

// Clone returns an entry owning independent clones of the key and value.
func (e *Entry[K, V]) Clone(cloneKey func(K) K, cloneValue func(V) V) *Entry[K, V] {
	return &Entry[K, V]{Key: cloneKey(e.Key), Value: cloneValue(e.Value)}
}
