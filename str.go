package kit

import (
	"fmt"
	"strings"
)

// Str is an immutable string with the search and transform helpers the rest
// of the package builds on.
type Str string

// StrFrom returns s as a Str.
func StrFrom(s string) Str { return Str(s) }

// StrFormat formats according to a format specifier, like fmt.Sprintf.
func StrFormat(format string, args ...any) Str {
	return Str(fmt.Sprintf(format, args...))
}

// Len returns the length in bytes.
func (s Str) Len() int { return len(s) }

// String implement the formatting output interface fmt.Stringer
func (s Str) String() string { return string(s) }

// Sub returns count bytes starting at start. It panics if the range does
// not fit in s.
func (s Str) Sub(start, count int) Str {
	assertRange("string", start, count, len(s))
	return s[start : start+count]
}

// IndexOf returns the first index of b, or -1.
func (s Str) IndexOf(b byte) int {
	return strings.IndexByte(string(s), b)
}

// LastIndexOf returns the last index of b, or -1.
func (s Str) LastIndexOf(b byte) int {
	return strings.LastIndexByte(string(s), b)
}

// NthIndexOf returns the index of the nth occurrence of b counting from the
// front, or -1. n starts at 1.
func (s Str) NthIndexOf(n int, b byte) int {
	assertGreater(n, 0, "n")
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			if n--; n == 0 {
				return i
			}
		}
	}
	return -1
}

// NthLastIndexOf returns the index of the nth occurrence of b counting from
// the back, or -1. n starts at 1.
func (s Str) NthLastIndexOf(n int, b byte) int {
	assertGreater(n, 0, "n")
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			if n--; n == 0 {
				return i
			}
		}
	}
	return -1
}

// IndexOfStr returns the index of the first occurrence of query, or -1.
func (s Str) IndexOfStr(query string) int {
	return strings.Index(string(s), query)
}

// LastIndexOfStr returns the index of the last occurrence of query, or -1.
func (s Str) LastIndexOfStr(query string) int {
	return strings.LastIndex(string(s), query)
}

// Replace returns a copy with every occurrence of old replaced by with.
func (s Str) Replace(old, with string) Str {
	if old == "" {
		return s
	}
	return Str(strings.ReplaceAll(string(s), old, with))
}

// Upper returns s with all letters mapped to upper case.
func (s Str) Upper() Str { return Str(strings.ToUpper(string(s))) }

// Lower returns s with all letters mapped to lower case.
func (s Str) Lower() Str { return Str(strings.ToLower(string(s))) }

// Split cuts s around each delimiter. Runs of delimiters are treated as one
// and empty parts are dropped, so "/a//b/" yields ["a", "b"].
func (s Str) Split(delim byte) *Vector[Str] {
	parts := NewVector[Str](1, Identity[Str], NoDestroy[Str])
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == delim {
			if i > start {
				parts.Add(s[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// Hash returns the xxHash64 of s.
func (s Str) Hash() uint64 { return StringHash(string(s)) }

// Contains reports whether b occurs in s.
func (s Str) Contains(b byte) bool { return s.IndexOf(b) >= 0 }

// ContainsStr reports whether query occurs in s.
func (s Str) ContainsStr(query string) bool {
	return strings.Contains(string(s), query)
}

// Equals reports whether s is exactly other.
func (s Str) Equals(other string) bool { return string(s) == other }

// EqualsFold reports whether s equals other ignoring case.
func (s Str) EqualsFold(other string) bool {
	return strings.EqualFold(string(s), other)
}

// Compare returns 0 if s == other, a negative number if s < other and a
// positive number otherwise.
func (s Str) Compare(other Str) int {
	return strings.Compare(string(s), string(other))
}

// StrStrategy returns a map key/value strategy for Str.
func StrStrategy() Strategy[Str] {
	return Strategy[Str]{
		Hash:    Str.Hash,
		Equal:   func(a, b Str) bool { return a == b },
		Destroy: NoDestroy[Str],
		Clone:   Identity[Str],
	}
}

// StrFoldStrategy returns a key strategy for Str that ignores case.
func StrFoldStrategy() Strategy[Str] {
	return Strategy[Str]{
		Hash:    func(s Str) uint64 { return FoldHash(string(s)) },
		Equal:   func(a, b Str) bool { return a.EqualsFold(string(b)) },
		Destroy: NoDestroy[Str],
		Clone:   Identity[Str],
	}
}
