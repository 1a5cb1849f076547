// core/matrix/matrix.go
package matrix

// Dense is a row-major square matrix stored as nested slices.
type Dense [][]float64

// New allocates an n×n zero matrix.
func New(n int) Dense {
	m := make(Dense, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// Operands builds the benchmark inputs A[i][j] = 0.01(i+j), B[i][j] = 0.01(i-j).
func Operands(n int) (a, b Dense) {
	a, b = New(n), New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = float64(i+j) * 0.01
			b[i][j] = float64(i-j) * 0.01
		}
	}
	return a, b
}

// Mul is the naive i-j-k product; c must be n×n and is overwritten.
func Mul(c, a, b Dense) {
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
}

// Trace sums the main diagonal.
func (m Dense) Trace() float64 {
	var t float64
	for i := range m {
		t += m[i][i]
	}
	return t
}

// Run allocates, fills, multiplies and returns the trace of the product.
func Run(n int) float64 {
	a, b := Operands(n)
	c := New(n)
	Mul(c, a, b)
	return c.Trace()
}
