// Package litscan provides the small set of string- and byte-level scanning
// primitives shared by the general matcher's start-position strategy and the
// shape recognizers: literal-run extraction straight from a pattern string
// (the same style the original C reference uses for its own
// find_common_prefix/find_common_suffix heuristics), a Boyer-Moore-Horspool
// searcher, and a CPU-feature-gated byte scan.
package litscan

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// IndexByte returns the index of the first occurrence of b in haystack, or
// -1 if absent. On CPUs with AVX2 it scans eight bytes at a time with a
// branchless zero-byte test instead of calling bytes.IndexByte one byte at a
// time; this is a pure-Go SWAR technique (no assembly), gated the same way
// the teacher's amd64 SIMD primitives gate their vector path, on both a CPU
// feature flag and a minimum length worth the setup cost.
func IndexByte(haystack []byte, b byte) int {
	if !cpu.X86.HasAVX2 || len(haystack) < 64 {
		return bytes.IndexByte(haystack, b)
	}
	return indexByteSWAR(haystack, b)
}

const lo64 = 0x0101010101010101
const hi64 = 0x8080808080808080

func indexByteSWAR(haystack []byte, b byte) int {
	n := len(haystack)
	pattern := uint64(b) * lo64
	i := 0
	for ; i+8 <= n; i += 8 {
		word := binary.LittleEndian.Uint64(haystack[i : i+8])
		x := word ^ pattern
		// Classic "does this word contain a zero byte" trick: a byte is zero
		// iff subtracting 1 borrows into its high bit while that high bit was
		// not already set.
		if (x-lo64)&^x&hi64 != 0 {
			for j := 0; j < 8; j++ {
				if haystack[i+j] == b {
					return i + j
				}
			}
		}
	}
	for ; i < n; i++ {
		if haystack[i] == b {
			return i
		}
	}
	return -1
}
