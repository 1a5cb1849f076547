// core/dft/dft.go
package dft

import "math"

// Signal builds the three-tone test signal sin(t) + 0.5 sin(3t) + 0.25 sin(5t)
// sampled at t = 2πi/n.
func Signal(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		t := float64(i) * 2.0 * math.Pi / float64(n)
		s[i] = math.Sin(t) + 0.5*math.Sin(3*t) + 0.25*math.Sin(5*t)
	}
	return s
}

// Transform is the direct O(n²) discrete Fourier transform. It deliberately
// does not use a fast transform.
func Transform(signal []float64) (re, im []float64) {
	n := len(signal)
	re = make([]float64, n)
	im = make([]float64, n)
	for k := 0; k < n; k++ {
		var rs, is float64
		for j := 0; j < n; j++ {
			angle := -2.0 * math.Pi * float64(k) * float64(j) / float64(n)
			rs += signal[j] * math.Cos(angle)
			is += signal[j] * math.Sin(angle)
		}
		re[k] = rs
		im[k] = is
	}
	return re, im
}

// Power sums the squared magnitudes of the spectrum.
func Power(re, im []float64) float64 {
	var sum float64
	for i := range re {
		sum += re[i]*re[i] + im[i]*im[i]
	}
	return sum
}

// Run generates, transforms and reduces a signal of n points.
func Run(n int) float64 {
	re, im := Transform(Signal(n))
	return Power(re, im)
}
