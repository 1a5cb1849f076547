// core/intsort/intsort.go
package intsort

import (
	"slices"

	"tengebench-core/xorshift"
)

// Seed is the fixed generator seed shared by every port of the sort benchmark.
const Seed uint64 = 88172645463393265

// Generate fills a fresh slice with n draws from r.
func Generate(r *xorshift.Rand, n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = r.Uint64()
	}
	return v
}

// Sort orders v in place with an unstable comparison sort (pdqsort).
func Sort(v []uint64) { slices.Sort(v) }

// Stride is the checksum sampling step: every n/16-th element, at least 1.
func Stride(n int) int {
	if s := n / 16; s > 1 {
		return s
	}
	return 1
}

// Checksum XORs every Stride(len(v))-th element starting at index 0.
func Checksum(v []uint64) uint64 {
	var acc uint64
	step := Stride(len(v))
	for i := 0; i < len(v); i += step {
		acc ^= v[i]
	}
	return acc
}

// Run is one full benchmark iteration: generate from the fixed seed, sort,
// checksum.
func Run(n int) uint64 {
	v := Generate(xorshift.New(Seed), n)
	Sort(v)
	return Checksum(v)
}
