package kit

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size of the running CPU, as reported by
// the `golang.org/x/sys` package. Array and Vector never grow to fewer
// elements than fit in one line.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// minGrowth returns the smallest capacity a growing buffer of T should have.
func minGrowth[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || size >= CacheLineSize {
		return 2
	}
	return max(2, int(CacheLineSize/size))
}

// grownCap doubles capacity until it can hold need elements.
func grownCap[T any](capacity, need int) int {
	if capacity < minGrowth[T]() {
		capacity = minGrowth[T]()
	}
	for capacity < need {
		capacity <<= 1
	}
	return capacity
}
