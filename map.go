package kit

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultLoadFactor is the ratio of entries to slots above which a Map grows.
const DefaultLoadFactor = 0.75

// MapConfig defines configurable Map options.
type MapConfig struct {
	loadFactor float64
	logger     *zap.Logger
}

// WithLoadFactor configures the growth threshold of a new Map. Higher values
// trade lookup speed for memory. It panics if f is not a positive number.
func WithLoadFactor(f float64) func(*MapConfig) {
	if math.IsNaN(f) || f <= 0 {
		panic(errors.AssertionFailedf("illegal load factor: %v", f))
	}
	return func(c *MapConfig) {
		c.loadFactor = f
	}
}

// WithLogger configures a logger that receives debug events about table
// growth. A nil logger is ignored.
func WithLogger(logger *zap.Logger) func(*MapConfig) {
	return func(c *MapConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Map is a hash map with separate chaining.
//
// Keys are placed in slot hash(key) % capacity; keys sharing a slot form a
// chain appended at the tail. The slot array doubles when the number of
// entries crosses the load factor, after which every entry is relocated.
//
// The Map owns its keys and values: they are released through the Destroy
// functions of the key and value strategies whenever the Map drops them, and
// duplicated through the Clone functions by Map.Clone.
//
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	entries      *entrySet[K, V]
	keys         Strategy[K]
	values       Strategy[V]
	entryCount   int
	minCap       int
	loadFactor   float64
	totalGrowths uint32
	logger       *zap.Logger
}

// NewMap creates a map with room for capacity slots (at least two). All six
// strategy functions are mandatory; a nil function panics naming the field.
func NewMap[K, V any](
	capacity int,
	hash func(K) uint64,
	equal func(a, b K) bool,
	destroyKey func(K),
	destroyValue func(V),
	cloneKey func(K) K,
	cloneValue func(V) V,
	options ...func(*MapConfig),
) *Map[K, V] {
	assertNotNil(hash != nil, "hash")
	assertNotNil(equal != nil, "equal")
	assertNotNil(destroyKey != nil, "destroyKey")
	assertNotNil(destroyValue != nil, "destroyValue")
	assertNotNil(cloneKey != nil, "cloneKey")
	assertNotNil(cloneValue != nil, "cloneValue")
	return NewMapWithStrategies(
		capacity,
		Strategy[K]{Hash: hash, Equal: equal, Destroy: destroyKey, Clone: cloneKey},
		Strategy[V]{Destroy: destroyValue, Clone: cloneValue},
		options...,
	)
}

// NewMapWithStrategies creates a map from bundled key and value strategies.
// The key strategy needs all four functions; the value strategy needs
// Destroy and Clone.
func NewMapWithStrategies[K, V any](
	capacity int,
	keys Strategy[K],
	values Strategy[V],
	options ...func(*MapConfig),
) *Map[K, V] {
	keys.validateKey("keys")
	values.validateValue("values")

	c := &MapConfig{
		loadFactor: DefaultLoadFactor,
		logger:     zap.NewNop(),
	}
	for _, o := range options {
		o(c)
	}

	m := &Map[K, V]{
		keys:       keys,
		values:     values,
		minCap:     max(capacity, minEntrySetCapacity),
		loadFactor: c.loadFactor,
		logger:     c.logger,
	}
	m.entries = newEntrySet[K, V](m.minCap, m.loadFactor)
	return m
}

// Len returns the number of key/value pairs.
func (m *Map[K, V]) Len() int {
	return m.entryCount
}

// Capacity returns the number of slots.
func (m *Map[K, V]) Capacity() int {
	return m.entries.capacity()
}

// LoadFactor returns the configured growth threshold.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

func (m *Map[K, V]) slot(set *entrySet[K, V], key K) int {
	return int(m.keys.Hash(key) % uint64(set.capacity()))
}

// Insert stores value under key, taking ownership of both.
//
// If an equal key is already present, the stored key and value are destroyed
// and replaced by the new ones; the number of entries does not change.
func (m *Map[K, V]) Insert(key K, value V) {
	if m.insert(m.entries, NewEntry(key, value), true) {
		m.rehash()
	}
}

// insert places e into set and reports whether the set was resized and
// therefore needs a rehash. Growth is only considered when e opens a new
// slot and allowGrowth is set.
func (m *Map[K, V]) insert(set *entrySet[K, V], e *Entry[K, V], allowGrowth bool) bool {
	index := m.slot(set, e.Key)
	chain := set.get(index)
	if chain == nil {
		resized := set.set(index, NewList(e), allowGrowth, m.entryCount)
		m.entryCount++
		return resized
	}

	for n := chain.Head(); n != nil; n = n.Next() {
		if m.keys.Equal(n.Value.Key, e.Key) {
			n.Value.Destroy(m.keys.Destroy, m.values.Destroy)
			n.Value.Key, n.Value.Value = e.Key, e.Value
			return false
		}
	}
	chain.PushTail(e)
	m.entryCount++
	return false
}

// rehash relocates every entry into a fresh set sized to the current
// capacity. Entries move without being cloned or destroyed.
func (m *Map[K, V]) rehash() {
	count := m.entryCount
	old := m.entries
	rehashed := newEntrySet[K, V](old.capacity(), m.loadFactor)

	m.entryCount = 0
	old.each(func(e *Entry[K, V]) bool {
		m.insert(rehashed, e, false)
		return true
	})
	old.destroy(m.keys, m.values, false)

	m.entries = rehashed
	m.entryCount = count
	m.totalGrowths++

	if ce := m.logger.Check(zap.DebugLevel, "map rehashed"); ce != nil {
		ce.Write(
			zap.Int("capacity", rehashed.capacity()),
			zap.Int("entries", count),
			zap.Int("occupied", rehashed.count),
			zap.Uint32("growths", m.totalGrowths),
		)
	}
}

// find returns the slot index, the chain and the position within the chain
// of key. pos is -1 on a miss; chain is nil when the slot is empty.
func (m *Map[K, V]) find(key K) (index int, chain *List[*Entry[K, V]], pos int) {
	index = m.slot(m.entries, key)
	chain = m.entries.get(index)
	if chain == nil {
		return index, nil, -1
	}
	pos = 0
	for n := chain.Head(); n != nil; n = n.Next() {
		if m.keys.Equal(n.Value.Key, key) {
			return index, chain, pos
		}
		pos++
	}
	return index, chain, -1
}

func (m *Map[K, V]) discard(key K, discardKey bool) {
	if discardKey {
		m.keys.Destroy(key)
	}
}

// GetEntry returns the entry stored under key, or nil. When discardKey is
// set, key is destroyed after the lookup whether or not it was found.
func (m *Map[K, V]) GetEntry(key K, discardKey bool) *Entry[K, V] {
	defer m.discard(key, discardKey)
	_, chain, pos := m.find(key)
	if pos < 0 {
		return nil
	}
	return chain.At(pos)
}

// GetValue returns the value stored under key. When discardKey is set, key
// is destroyed after the lookup whether or not it was found.
func (m *Map[K, V]) GetValue(key K, discardKey bool) Option[V] {
	if e := m.GetEntry(key, discardKey); e != nil {
		return Some(e.Value)
	}
	return None[V]()
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, _, pos := m.find(key)
	return pos >= 0
}

// Remove detaches the entry stored under key and hands it to the caller, who
// becomes responsible for destroying it. It returns nil on a miss. When
// discardKey is set, key is destroyed whether or not it was found.
func (m *Map[K, V]) Remove(key K, discardKey bool) *Entry[K, V] {
	defer m.discard(key, discardKey)
	index, chain, pos := m.find(key)
	if pos < 0 {
		return nil
	}

	var e *Entry[K, V]
	if pos > 0 {
		e = chain.Pop(pos)
	} else {
		// The successor, if any, becomes the head; a chain left empty
		// gives its slot back.
		e = chain.PopHead().Unwrap()
		if chain.IsHeadless() {
			m.entries.clear(index)
		}
	}
	m.entryCount--
	return e
}

// Delete removes and destroys the entry stored under key. It reports whether
// an entry was found.
func (m *Map[K, V]) Delete(key K, discardKey bool) bool {
	e := m.Remove(key, discardKey)
	if e == nil {
		return false
	}
	e.Destroy(m.keys.Destroy, m.values.Destroy)
	return true
}

// Clone returns an independent deep copy of the map. Every key and value is
// duplicated through the clone strategies.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := *m
	clone.entries = m.entries.clone(m.keys, m.values)
	return &clone
}

// Clear destroys every entry, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	capacity := m.entries.capacity()
	m.entries.destroy(m.keys, m.values, true)
	m.entries = newEntrySet[K, V](capacity, m.loadFactor)
	m.entryCount = 0
}

// Destroy destroys every entry and shrinks the map back to its initial
// capacity. The map remains usable.
func (m *Map[K, V]) Destroy() {
	m.entries.destroy(m.keys, m.values, true)
	m.entries = newEntrySet[K, V](m.minCap, m.loadFactor)
	m.entryCount = 0
}

// RangeEntry calls f for every entry in slot order, then chain order,
// stopping when f returns false. The map must not be modified during the
// iteration.
func (m *Map[K, V]) RangeEntry(f func(e *Entry[K, V]) bool) {
	m.entries.each(f)
}

// Range calls f sequentially for each key and value present in the map.
// If f returns false, range stops the iteration.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.entries.each(func(e *Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

// All returns an iterator over key/value pairs.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return m.Range
}

// Keys returns an iterator over the keys.
func (m *Map[K, V]) Keys() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		m.Range(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Values returns an iterator over the values.
func (m *Map[K, V]) Values() func(yield func(V) bool) {
	return func(yield func(V) bool) {
		m.Range(func(_ K, v V) bool {
			return yield(v)
		})
	}
}

// Splice returns a flat snapshot of the current entries.
func (m *Map[K, V]) Splice() *Splice[K, V] {
	return NewSplice(m)
}

// String returns the map formatted as map[k1:v1 k2:v2].
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	m.Range(func(k K, v V) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

// MapStats is Map statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code.
type MapStats struct {
	// Capacity is the number of slots.
	Capacity int
	// OccupiedSlots is the number of slots holding a chain.
	OccupiedSlots int
	// EmptySlots is the number of slots holding nothing.
	EmptySlots int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the number of entries according to the map's counter.
	// It always equals Size.
	Counter int
	// MinChain is the length of the shortest non-empty chain.
	MinChain int
	// MaxChain is the length of the longest chain.
	MaxChain int
	// TotalGrowths is the number of times the slot array doubled.
	TotalGrowths uint32
	// LoadFactor is the configured growth threshold.
	LoadFactor float64
}

// Stats returns statistics for the Map. Just like other map
// methods, this one is not safe for concurrent use.
func (m *Map[K, V]) Stats() *MapStats {
	stats := &MapStats{
		Capacity:      m.entries.capacity(),
		OccupiedSlots: m.entries.count,
		Counter:       m.entryCount,
		TotalGrowths:  m.totalGrowths,
		LoadFactor:    m.loadFactor,
		MinChain:      math.MaxInt,
	}
	for _, chain := range m.entries.slots {
		if chain == nil {
			stats.EmptySlots++
			continue
		}
		n := chain.Len()
		stats.Size += n
		stats.MinChain = min(stats.MinChain, n)
		stats.MaxChain = max(stats.MaxChain, n)
	}
	if stats.MinChain == math.MaxInt {
		stats.MinChain = 0
	}
	return stats
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:      %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("OccupiedSlots: %d\n", s.OccupiedSlots))
	sb.WriteString(fmt.Sprintf("EmptySlots:    %d\n", s.EmptySlots))
	sb.WriteString(fmt.Sprintf("Size:          %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:       %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinChain:      %d\n", s.MinChain))
	sb.WriteString(fmt.Sprintf("MaxChain:      %d\n", s.MaxChain))
	sb.WriteString(fmt.Sprintf("TotalGrowths:  %d\n", s.TotalGrowths))
	sb.WriteString(fmt.Sprintf("LoadFactor:    %.2f\n", s.LoadFactor))
	sb.WriteString("}\n")
	return sb.String()
}
