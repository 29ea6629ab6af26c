// Package datagen produces deterministic test and benchmark inputs.
//
// Values are derived from (seed, index) with murmur3, so a fill is fully
// reproducible from its seed alone and identical across runs, platforms and
// array sizes — the property the cross-cutoff bit-identity checks rely on.
package datagen

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Fill overwrites dst with pseudo-random values derived from seed.
func Fill(dst []int64, seed uint64) {
	var buf [8]byte
	for i := range dst {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		dst[i] = int64(murmur3.Sum64WithSeed(buf[:], uint32(seed)) ^ seed)
	}
}

// FillBounded is Fill restricted to values in [0, bound). bound must be
// positive. Useful for forcing duplicate keys.
func FillBounded(dst []int64, seed uint64, bound int64) {
	Fill(dst, seed)
	for i, v := range dst {
		v %= bound
		if v < 0 {
			v += bound
		}
		dst[i] = v
	}
}

// FillReversed overwrites dst with n, n-1, ..., 1 — the strictly descending
// worst case for an ascending sort.
func FillReversed(dst []int64) {
	n := int64(len(dst))
	for i := range dst {
		dst[i] = n - int64(i)
	}
}

// FillConstant overwrites dst with a single repeated value.
func FillConstant(dst []int64, v int64) {
	for i := range dst {
		dst[i] = v
	}
}

// FillSorted overwrites dst with 1, 2, ..., n.
func FillSorted(dst []int64) {
	for i := range dst {
		dst[i] = int64(i) + 1
	}
}
