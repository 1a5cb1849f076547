// core/nbody/allpairs.go
package nbody

import (
	"math"

	"tengebench-core/xorshift"
)

const (
	G    = 1.0
	Eps2 = 1e-9 // softening added to every squared separation
	Seed = uint64(123456789)
)

// Bodies is the array-of-structs state for the all-pairs variant.
type Bodies struct {
	Pos  []Vec3
	Vel  []Vec3
	Acc  []Vec3
	Mass []float64
}

// NewBodies draws n unit-mass bodies: positions uniform in [0,1)³, velocities
// (u-0.5)·1e-3. Each body consumes six uniforms in x,y,z position then
// x,y,z velocity order.
func NewBodies(r *xorshift.Rand, n int) *Bodies {
	b := &Bodies{
		Pos:  make([]Vec3, n),
		Vel:  make([]Vec3, n),
		Acc:  make([]Vec3, n),
		Mass: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b.Pos[i] = Vec3{r.Float64(), r.Float64(), r.Float64()}
		b.Vel[i] = Vec3{(r.Float64() - 0.5) * 1e-3, (r.Float64() - 0.5) * 1e-3, (r.Float64() - 0.5) * 1e-3}
		b.Mass[i] = 1.0
	}
	return b
}

// accel sums the softened pull of every other body on body i.
func (b *Bodies) accel(i int) Vec3 {
	var ai Vec3
	pi := b.Pos[i]
	for j := range b.Pos {
		if i == j {
			continue
		}
		rij := b.Pos[j].Sub(pi)
		r2 := rij.Dot(rij) + Eps2
		inv := 1.0 / math.Sqrt(r2*r2*r2)
		ai = ai.Add(rij.Scale(G * b.Mass[j] * inv))
	}
	return ai
}

// Init computes the starting accelerations.
func (b *Bodies) Init() {
	for i := range b.Pos {
		b.Acc[i] = b.accel(i)
	}
}

// Step advances one velocity-Verlet step.
func (b *Bodies) Step(dt float64) {
	for i := range b.Pos {
		b.Pos[i] = b.Pos[i].Add(b.Vel[i].Scale(dt))
		b.Pos[i] = b.Pos[i].Add(b.Acc[i].Scale(0.5 * dt * dt))
	}
	for i := range b.Pos {
		ai := b.accel(i)
		half := b.Acc[i].Scale(0.5 * dt).Add(ai.Scale(0.5 * dt))
		b.Vel[i] = b.Vel[i].Add(half)
		b.Acc[i] = ai
	}
}

// Energy returns kinetic plus softened potential energy.
func (b *Bodies) Energy() float64 {
	var ke, pe float64
	for i := range b.Vel {
		ke += 0.5 * b.Mass[i] * b.Vel[i].Dot(b.Vel[i])
	}
	for i := range b.Pos {
		for j := i + 1; j < len(b.Pos); j++ {
			rij := b.Pos[j].Sub(b.Pos[i])
			pe += -G * b.Mass[i] * b.Mass[j] / math.Sqrt(rij.Dot(rij)+Eps2)
		}
	}
	return ke + pe
}
