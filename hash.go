package kit

import (
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// hashPrime is the 64-bit Golden Ratio mixing constant.
const hashPrime = 0x9E3779B185EBCA87

// StringHash hashes s with xxHash64.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes b with xxHash64.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// FoldHash hashes s so that any two strings equal under strings.EqualFold
// hash alike. Each rune is reduced to the smallest member of its simple
// case folding orbit before it is fed to xxHash64.
func FoldHash(s string) uint64 {
	d := xxhash.New()
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], foldRune(r))
		_, _ = d.Write(buf[:n])
	}
	return d.Sum64()
}

func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < least {
			least = f
		}
	}
	return least
}

// BernsteinHash is Dan Bernstein's shift-and-add string hash. It is cheap but
// distributes poorly; prefer StringHash unless hashes must stay stable with
// data produced by older tooling.
func BernsteinHash(s string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(s); i++ {
		hash = (hash << 5) + uint64(s[i])
	}
	return hash
}

// IntHash spreads an integer key over the full 64-bit range.
func IntHash[T constraints.Integer](v T) uint64 {
	h := uint64(v) * hashPrime
	return h ^ (h >> 32)
}
