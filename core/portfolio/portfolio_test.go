package portfolio

import (
	"math"
	"testing"
)

func TestVariance_Known(t *testing.T) {
	cases := map[int]float64{1: 0.04, 2: 0.02125, 100: 0.005300499999999982}
	for n, want := range cases {
		if got := NewUniform(n).Variance(); math.Abs(got-want) > 1e-12 {
			t.Fatalf("n=%d variance %v want %v", n, got, want)
		}
	}
}

func TestCovSymmetric(t *testing.T) {
	u := NewUniform(17)
	for i := range u.Cov {
		for j := range u.Cov {
			if u.Cov[i][j] != u.Cov[j][i] {
				t.Fatalf("cov[%d][%d] != cov[%d][%d]", i, j, j, i)
			}
		}
	}
}

func TestExpectedReturn(t *testing.T) {
	// Ten assets cover the full 0.01..0.028 cycle once: mean 0.019.
	if got := NewUniform(10).ExpectedReturn(); math.Abs(got-0.019) > 1e-15 {
		t.Fatalf("expected return %v", got)
	}
}

func TestEmpty(t *testing.T) {
	if got := NewUniform(0).Variance(); got != 0 {
		t.Fatalf("empty variance %v", got)
	}
}
