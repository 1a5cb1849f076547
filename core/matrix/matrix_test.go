package matrix

import (
	"math"
	"testing"
)

func TestMul_Identity(t *testing.T) {
	a := Dense{{1, 2}, {3, 4}}
	id := Dense{{1, 0}, {0, 1}}
	c := New(2)
	Mul(c, a, id)
	for i := range a {
		for j := range a[i] {
			if c[i][j] != a[i][j] {
				t.Fatalf("c[%d][%d]=%v", i, j, c[i][j])
			}
		}
	}
}

func TestMul_Known(t *testing.T) {
	a := Dense{{1, 2}, {3, 4}}
	b := Dense{{5, 6}, {7, 8}}
	c := New(2)
	Mul(c, a, b)
	want := Dense{{19, 22}, {43, 50}}
	for i := range want {
		for j := range want[i] {
			if c[i][j] != want[i][j] {
				t.Fatalf("c[%d][%d]=%v want %v", i, j, c[i][j], want[i][j])
			}
		}
	}
	if c.Trace() != 69 {
		t.Fatalf("trace %v", c.Trace())
	}
}

func TestRun_TraceVanishes(t *testing.T) {
	// Σ_i Σ_k (i+k)(k-i) = Σ k² - i² = 0; only rounding noise survives.
	for _, n := range []int{1, 2, 3, 50} {
		if got := Run(n); math.Abs(got) > 1e-9 {
			t.Fatalf("n=%d trace %v", n, got)
		}
	}
	if Run(0) != 0 {
		t.Fatal("empty trace")
	}
}
