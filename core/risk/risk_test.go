package risk

import (
	"math"
	"testing"

	"tengebench-core/xorshift"
)

func TestInvNorm_FixedPoints(t *testing.T) {
	if got := InvNorm(0.5); got != 0 {
		t.Fatalf("median should be exactly 0, got %v", got)
	}
	cases := map[float64]float64{
		0.99:  2.327408418916614,
		0.975: 1.9600256487443963,
		0.9:   1.2815515371853796,
	}
	for p, want := range cases {
		if got := InvNorm(p); math.Abs(got-want) > 1e-12 {
			t.Fatalf("InvNorm(%v)=%.17g want %.17g", p, got, want)
		}
	}
}

func TestInvNorm_Antisymmetric(t *testing.T) {
	for _, p := range []float64{0.6, 0.75, 0.9, 0.99} {
		if a, b := InvNorm(p), InvNorm(1-p); math.Abs(a+b) > 1e-12 {
			t.Fatalf("p=%v: %v vs %v", p, a, b)
		}
	}
}

func TestInvNorm_Clamped(t *testing.T) {
	if v := InvNorm(0); math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("p=0 should be clamped, got %v", v)
	}
	if InvNorm(1) != InvNorm(1+1e-3) {
		t.Fatal("p>=1 should clamp to the same value")
	}
}

func TestNormal_VaRAndES(t *testing.T) {
	d := Normal{Mu: 0, Sigma: 1}
	if got := d.VaR(0.99); math.Abs(got-2.327408418916614) > 1e-12 {
		t.Fatalf("VaR %v", got)
	}
	if got := d.ES(0.99); math.Abs(got-2.658645223463311) > 1e-9 {
		t.Fatalf("ES %v", got)
	}
	shifted := Normal{Mu: 1, Sigma: 2}
	if got := shifted.VaR(0.99); math.Abs(got-(1+2*2.327408418916614)) > 1e-12 {
		t.Fatalf("shifted VaR %v", got)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	d := Normal{Mu: 0, Sigma: 1}
	a := d.Assess(xorshift.New(Seed), 10000, 0.99)
	b := d.Assess(xorshift.New(Seed), 10000, 0.99)
	if a != b {
		t.Fatalf("same seed, different results: %+v vs %+v", a, b)
	}
	if a.AbsErrVaR != 0 || a.AbsErrES != 0 {
		t.Fatalf("estimates are analytic, errors must be 0: %+v", a)
	}
	if math.Abs(a.MeanPnL) > 0.05 {
		t.Fatalf("mean PnL too far from μ: %v", a.MeanPnL)
	}
}

func TestMeanPnL_Empty(t *testing.T) {
	if v := (Normal{Sigma: 1}).MeanPnL(xorshift.New(Seed), 0); !math.IsNaN(v) {
		t.Fatalf("0 draws should give NaN, got %v", v)
	}
}

func TestQuantileIndex(t *testing.T) {
	cases := []struct {
		n     int
		alpha float64
		want  int
	}{
		{100, 0.99, 98},
		{1000000, 0.99, 989999},
		{1, 0.99, 0},
		{10, 0, 0},
		{10, 1.5, 9},
		{0, 0.99, -1},
	}
	for _, c := range cases {
		if got := QuantileIndex(c.n, c.alpha); got != c.want {
			t.Fatalf("QuantileIndex(%d,%v)=%d want %d", c.n, c.alpha, got, c.want)
		}
	}
}

func TestEmpiricalVaR(t *testing.T) {
	losses := []float64{5, 1, 4, 2, 3, 10, 9, 8, 7, 6}
	if got := EmpiricalVaR(losses, 0.9); got != 9 {
		t.Fatalf("0.9 quantile of 1..10 should be 9, got %v", got)
	}
	if got := EmpiricalVaR(nil, 0.99); got != 0 {
		t.Fatalf("empty: %v", got)
	}
}

func TestLosses_Scale(t *testing.T) {
	l := Losses(xorshift.New(Seed), 50000, 4)
	var sq float64
	for _, x := range l {
		sq += x * x
	}
	// Four N(0, 0.02²) steps sum to variance 4·0.0004.
	if v := sq / float64(len(l)); math.Abs(v-0.0016) > 0.0001 {
		t.Fatalf("loss variance %v", v)
	}
}
