package kit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// Unwrap returns the value and panics if the option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(errors.AssertionFailedf("unwrap of an empty option"))
	}
	return o.value
}

// UnwrapOr returns the value, or other if the option is empty.
func (o Option[T]) UnwrapOr(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// UnwrapOrDefault returns the value, or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// String implement the formatting output interface fmt.Stringer
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
