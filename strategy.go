package kit

import (
	"golang.org/x/exp/constraints"
)

// Strategy bundles the functions a Map needs to manage a key or value type.
//
// For keys all four functions are mandatory. For values only Destroy and
// Clone are consulted; Hash and Equal may be nil.
//
// Destroy is invoked exactly when the Map gives up ownership of an instance:
// on replacement during Insert, on Delete, on Clear/Destroy and for lookup
// keys passed with discardKey set. Types that need no cleanup use NoDestroy.
type Strategy[T any] struct {
	Hash    func(T) uint64
	Equal   func(a, b T) bool
	Destroy func(T)
	Clone   func(T) T
}

func (s Strategy[T]) validateKey(name string) {
	assertNotNil(s.Hash != nil, name+".Hash")
	assertNotNil(s.Equal != nil, name+".Equal")
	s.validateValue(name)
}

func (s Strategy[T]) validateValue(name string) {
	assertNotNil(s.Destroy != nil, name+".Destroy")
	assertNotNil(s.Clone != nil, name+".Clone")
}

// NoDestroy is a Destroy function for types that hold no resources.
func NoDestroy[T any](T) {}

// Identity is a Clone function for value types whose copies are already
// independent.
func Identity[T any](v T) T { return v }

// ValueStrategy returns a value strategy for plain values that need neither
// cleanup nor deep copies.
func ValueStrategy[T any]() Strategy[T] {
	return Strategy[T]{Destroy: NoDestroy[T], Clone: Identity[T]}
}

// ComparableStrategy returns a key strategy using == for equality and the
// given hash function.
func ComparableStrategy[T comparable](hash func(T) uint64) Strategy[T] {
	return Strategy[T]{
		Hash:    hash,
		Equal:   func(a, b T) bool { return a == b },
		Destroy: NoDestroy[T],
		Clone:   Identity[T],
	}
}

// StringStrategy returns a key strategy for Go strings.
func StringStrategy() Strategy[string] {
	return ComparableStrategy(StringHash)
}

// IntStrategy returns a key strategy for any integer type.
func IntStrategy[T constraints.Integer]() Strategy[T] {
	return ComparableStrategy(IntHash[T])
}
