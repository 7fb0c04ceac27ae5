package kit

// minEntrySetCapacity is the smallest number of slots an entry set holds.
// Zero-slot tables would need special cases for the modulo and for doubling.
const minEntrySetCapacity = 2

// entrySet is the slot array of a Map. Each slot is nil or holds a non-empty
// chain of entries whose keys share the slot.
//
// The set tracks how many slots are occupied but not how many entries exist;
// the owning Map counts entries and passes its count in when growth may
// happen.
type entrySet[K, V any] struct {
	slots      []*List[*Entry[K, V]]
	count      int // occupied slots
	loadFactor float64
}

func newEntrySet[K, V any](capacity int, loadFactor float64) *entrySet[K, V] {
	if capacity < minEntrySetCapacity {
		capacity = minEntrySetCapacity
	}
	return &entrySet[K, V]{
		slots:      make([]*List[*Entry[K, V]], capacity),
		loadFactor: loadFactor,
	}
}

func (s *entrySet[K, V]) capacity() int {
	return len(s.slots)
}

func (s *entrySet[K, V]) get(index int) *List[*Entry[K, V]] {
	return s.slots[index]
}

// overloaded reports whether a table holding entryCount entries has crossed
// the load factor.
func (s *entrySet[K, V]) overloaded(entryCount int) bool {
	return float64(entryCount)/s.loadFactor+1 > float64(len(s.slots))
}

// set installs chain at index. With allowGrowth set and the load condition
// met, the slot array is doubled first. It returns whether the capacity
// changed; the caller must then rehash, since every slot index is stale.
func (s *entrySet[K, V]) set(index int, chain *List[*Entry[K, V]], allowGrowth bool, entryCount int) bool {
	resized := false
	if allowGrowth && s.overloaded(entryCount) {
		capacity := max(len(s.slots)*2, minEntrySetCapacity)
		slots := make([]*List[*Entry[K, V]], capacity)
		copy(slots, s.slots)
		s.slots = slots
		resized = true
	}
	if s.slots[index] == nil {
		s.count++
	}
	s.slots[index] = chain
	return resized
}

// clear reverts the slot at index to empty.
func (s *entrySet[K, V]) clear(index int) {
	if s.slots[index] != nil {
		s.slots[index] = nil
		s.count--
	}
}

// each calls yield for every entry in slot order, then chain order.
func (s *entrySet[K, V]) each(yield func(e *Entry[K, V]) bool) bool {
	for _, chain := range s.slots {
		if chain == nil {
			continue
		}
		for n := chain.Head(); n != nil; n = n.Next() {
			if !yield(n.Value) {
				return false
			}
		}
	}
	return true
}

// clone deep-copies every chain, cloning each entry with the given
// strategies. Capacity and empty slots are preserved.
func (s *entrySet[K, V]) clone(keys Strategy[K], values Strategy[V]) *entrySet[K, V] {
	clone := &entrySet[K, V]{
		slots:      make([]*List[*Entry[K, V]], len(s.slots)),
		count:      s.count,
		loadFactor: s.loadFactor,
	}
	dup := func(e *Entry[K, V]) *Entry[K, V] {
		return e.Clone(keys.Clone, values.Clone)
	}
	for i, chain := range s.slots {
		if chain != nil {
			clone.slots[i] = chain.Clone(dup)
		}
	}
	return clone
}

// destroy releases every chain. Entries are destroyed only when
// destroyEntries is set; otherwise they are assumed to have moved to another
// set and only the chain scaffolding is dropped.
func (s *entrySet[K, V]) destroy(keys Strategy[K], values Strategy[V], destroyEntries bool) {
	var release func(*Entry[K, V])
	if destroyEntries {
		release = func(e *Entry[K, V]) {
			e.Destroy(keys.Destroy, values.Destroy)
		}
	}
	for i, chain := range s.slots {
		if chain != nil {
			chain.Free(release)
			s.slots[i] = nil
		}
	}
	s.slots = nil
	s.count = 0
}
