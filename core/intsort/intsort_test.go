package intsort

import (
	"testing"

	"tengebench-core/xorshift"
)

func TestSortNonDecreasing(t *testing.T) {
	v := Generate(xorshift.New(Seed), 5000)
	Sort(v)
	for i := 1; i < len(v); i++ {
		if v[i-1] > v[i] {
			t.Fatalf("not sorted at %d: %d > %d", i, v[i-1], v[i])
		}
	}
}

func TestStride(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 15: 1, 16: 1, 32: 2, 100000: 6250}
	for n, want := range cases {
		if got := Stride(n); got != want {
			t.Fatalf("Stride(%d)=%d want %d", n, got, want)
		}
	}
}

func TestRun_Reproducible(t *testing.T) {
	if got := Run(32); got != 17598384246377965283 {
		t.Fatalf("Run(32)=%d", got)
	}
	if got := Run(5); got != 5541295161838516817 {
		t.Fatalf("Run(5)=%d", got)
	}
	if Run(1000) != Run(1000) {
		t.Fatal("checksum must be reproducible")
	}
}

func TestRun_Empty(t *testing.T) {
	if got := Run(0); got != 0 {
		t.Fatalf("empty checksum should be 0, got %d", got)
	}
}

func TestChecksum_OrderDependent(t *testing.T) {
	v := Generate(xorshift.New(Seed), 64)
	unsorted := Checksum(v)
	Sort(v)
	if unsorted == Checksum(v) {
		t.Fatal("checksum should depend on element order")
	}
}
