// core/portfolio/portfolio.go
package portfolio

// Universe is a synthetic asset universe with uniform weights.
type Universe struct {
	Returns []float64
	Cov     [][]float64
	Weights []float64
}

// NewUniform builds the benchmark universe of n assets: expected returns
// 0.01 + 0.02(i mod 10)/10, covariance 0.04 on the diagonal and 0.01(i+j)/(2n)
// elsewhere, weights 1/n.
func NewUniform(n int) *Universe {
	u := &Universe{
		Returns: make([]float64, n),
		Cov:     make([][]float64, n),
		Weights: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		u.Cov[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		u.Returns[i] = 0.01 + 0.02*float64(i%10)/10.0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				u.Cov[i][j] = 0.04
			} else {
				u.Cov[i][j] = 0.01 * float64(i+j) / (2.0 * float64(n))
			}
		}
	}
	for i := 0; i < n; i++ {
		u.Weights[i] = 1.0 / float64(n)
	}
	return u
}

// Variance is wᵗΣw, accumulated term by term.
func (u *Universe) Variance() float64 {
	var v float64
	for i, wi := range u.Weights {
		for j, wj := range u.Weights {
			v += wi * wj * u.Cov[i][j]
		}
	}
	return v
}

// ExpectedReturn is wᵗμ.
func (u *Universe) ExpectedReturn() float64 {
	var r float64
	for i, w := range u.Weights {
		r += w * u.Returns[i]
	}
	return r
}
