package kit

import (
	"github.com/cockroachdb/errors"
)

// assertNotNil panics with an assertion failure when a mandatory function
// was not supplied. A missing strategy is a programmer error and is never
// recovered by this package.
func assertNotNil(ok bool, field string) {
	if !ok {
		panic(errors.AssertionFailedf("null pointer: %s is nil", field))
	}
}

// assertGreater panics unless value > required.
func assertGreater(value, required int, field string) {
	if value <= required {
		panic(errors.AssertionFailedf(
			"int size: %s is %d, but is required to be greater than %d",
			field, value, required))
	}
}

// assertBounds panics when index is outside [0, size).
func assertBounds(collection string, index, size int) {
	if index < 0 || index >= size {
		last := 0
		if size > 0 {
			last = size - 1
		}
		panic(errors.AssertionFailedf(
			"illegal bound: access of %s of size %d at index %d (allowed: 0 -> %d)",
			collection, size, index, last))
	}
}

// assertRange panics when [start, start+count) does not fit in size.
func assertRange(collection string, start, count, size int) {
	if start < 0 || count < 0 || start+count > size {
		panic(errors.AssertionFailedf(
			"illegal range: %s of size %d cannot hold [%d, %d)",
			collection, size, start, start+count))
	}
}
