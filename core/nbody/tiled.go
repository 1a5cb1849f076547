// core/nbody/tiled.go
package nbody

import (
	"math"

	"tengebench-core/xorshift"
)

// Tile is the block size of the symmetric variant.
const Tile = 64

// Tiled is the structure-of-arrays state for the symmetric variant. Masses are
// implicitly 1. Each pair is visited once and receives equal and opposite
// contributions.
type Tiled struct {
	PX, PY, PZ []float64
	VX, VY, VZ []float64
	AX, AY, AZ []float64

	// next-step accelerations, swapped with A* after every step
	nx, ny, nz []float64
	// per-tile accumulators for the inter-tile pass
	tix, tiy, tiz []float64
	tjx, tjy, tjz []float64
}

func newTiled(n int) *Tiled {
	f := func() []float64 { return make([]float64, n) }
	t := func() []float64 { return make([]float64, Tile) }
	return &Tiled{
		PX: f(), PY: f(), PZ: f(),
		VX: f(), VY: f(), VZ: f(),
		AX: f(), AY: f(), AZ: f(),
		nx: f(), ny: f(), nz: f(),
		tix: t(), tiy: t(), tiz: t(),
		tjx: t(), tjy: t(), tjz: t(),
	}
}

// NewTiled draws n bodies with the same stream layout as NewBodies.
func NewTiled(r *xorshift.Rand, n int) *Tiled {
	s := newTiled(n)
	for i := 0; i < n; i++ {
		s.PX[i], s.PY[i], s.PZ[i] = r.Float64(), r.Float64(), r.Float64()
		s.VX[i] = (r.Float64() - 0.5) * 1e-3
		s.VY[i] = (r.Float64() - 0.5) * 1e-3
		s.VZ[i] = (r.Float64() - 0.5) * 1e-3
	}
	return s
}

// FromBodies copies positions and velocities out of an all-pairs state.
func FromBodies(b *Bodies) *Tiled {
	s := newTiled(len(b.Pos))
	for i := range b.Pos {
		s.PX[i], s.PY[i], s.PZ[i] = b.Pos[i].X, b.Pos[i].Y, b.Pos[i].Z
		s.VX[i], s.VY[i], s.VZ[i] = b.Vel[i].X, b.Vel[i].Y, b.Vel[i].Z
	}
	return s
}

// Len is the body count.
func (s *Tiled) Len() int { return len(s.PX) }

// accelerate writes fresh accelerations into ax, ay, az.
func (s *Tiled) accelerate(ax, ay, az []float64) {
	n := s.Len()
	px, py, pz := s.PX, s.PY, s.PZ
	for i := 0; i < n; i++ {
		ax[i], ay[i], az[i] = 0, 0, 0
	}
	for i0 := 0; i0 < n; i0 += Tile {
		i1 := min(i0+Tile, n)

		// intra-tile: i<j inside one block, applied directly
		for i := i0; i < i1; i++ {
			for j := i + 1; j < i1; j++ {
				rx, ry, rz := px[j]-px[i], py[j]-py[i], pz[j]-pz[i]
				r2 := rx*rx + ry*ry + rz*rz + Eps2
				sc := G / math.Sqrt(r2*r2*r2)
				fx, fy, fz := rx*sc, ry*sc, rz*sc
				ax[i] += fx
				ay[i] += fy
				az[i] += fz
				ax[j] -= fx
				ay[j] -= fy
				az[j] -= fz
			}
		}

		// inter-tile: block i0 against every later block, through temporaries
		for j0 := i1; j0 < n; j0 += Tile {
			j1 := min(j0+Tile, n)
			ti, tj := i1-i0, j1-j0
			tix, tiy, tiz := s.tix[:ti], s.tiy[:ti], s.tiz[:ti]
			tjx, tjy, tjz := s.tjx[:tj], s.tjy[:tj], s.tjz[:tj]
			clear(tix)
			clear(tiy)
			clear(tiz)
			clear(tjx)
			clear(tjy)
			clear(tjz)

			for ii := 0; ii < ti; ii++ {
				pix, piy, piz := px[i0+ii], py[i0+ii], pz[i0+ii]
				for jj := 0; jj < tj; jj++ {
					j := j0 + jj
					rx, ry, rz := px[j]-pix, py[j]-piy, pz[j]-piz
					r2 := rx*rx + ry*ry + rz*rz + Eps2
					sc := G / math.Sqrt(r2*r2*r2)
					fx, fy, fz := rx*sc, ry*sc, rz*sc
					tix[ii] += fx
					tiy[ii] += fy
					tiz[ii] += fz
					tjx[jj] -= fx
					tjy[jj] -= fy
					tjz[jj] -= fz
				}
			}
			for ii := 0; ii < ti; ii++ {
				ax[i0+ii] += tix[ii]
				ay[i0+ii] += tiy[ii]
				az[i0+ii] += tiz[ii]
			}
			for jj := 0; jj < tj; jj++ {
				ax[j0+jj] += tjx[jj]
				ay[j0+jj] += tjy[jj]
				az[j0+jj] += tjz[jj]
			}
		}
	}
}

// Init computes the starting accelerations.
func (s *Tiled) Init() { s.accelerate(s.AX, s.AY, s.AZ) }

// Step advances one velocity-Verlet step.
func (s *Tiled) Step(dt float64) {
	n := s.Len()
	h := 0.5 * dt * dt
	for i := 0; i < n; i++ {
		s.PX[i] += s.VX[i]*dt + s.AX[i]*h
		s.PY[i] += s.VY[i]*dt + s.AY[i]*h
		s.PZ[i] += s.VZ[i]*dt + s.AZ[i]*h
	}
	s.accelerate(s.nx, s.ny, s.nz)
	hd := 0.5 * dt
	for i := 0; i < n; i++ {
		s.VX[i] += (s.AX[i] + s.nx[i]) * hd
		s.VY[i] += (s.AY[i] + s.ny[i]) * hd
		s.VZ[i] += (s.AZ[i] + s.nz[i]) * hd
	}
	s.AX, s.nx = s.nx, s.AX
	s.AY, s.ny = s.ny, s.AY
	s.AZ, s.nz = s.nz, s.AZ
}

// Energy returns kinetic plus softened potential energy (unit masses).
func (s *Tiled) Energy() float64 {
	n := s.Len()
	var ke, pe float64
	for i := 0; i < n; i++ {
		ke += 0.5 * (s.VX[i]*s.VX[i] + s.VY[i]*s.VY[i] + s.VZ[i]*s.VZ[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rx, ry, rz := s.PX[j]-s.PX[i], s.PY[j]-s.PY[i], s.PZ[j]-s.PZ[i]
			pe += -G / math.Sqrt(rx*rx+ry*ry+rz*rz+Eps2)
		}
	}
	return ke + pe
}
