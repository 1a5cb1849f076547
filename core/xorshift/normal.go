package xorshift

import "math"

// boxMullerFloor keeps log() finite when the first uniform is exactly 0.
const boxMullerFloor = 1e-18

// NormFloat64 returns one standard-normal deviate via Box-Muller, consuming two
// uniforms. The sine half of the pair is discarded so every port draws the same
// number of values per deviate.
func (r *Rand) NormFloat64() float64 {
	u1 := r.Float64()
	u2 := r.Float64()
	return math.Sqrt(-2.0*math.Log(u1+boxMullerFloor)) * math.Cos(2.0*math.Pi*u2)
}
