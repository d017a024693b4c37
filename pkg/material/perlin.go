package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth gradient noise from random unit vectors on a lattice
type Perlin struct {
	randVecs [perlinPointCount]core.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randVecs {
		p.randVecs[i] = core.RandomVec3Range(random, -1, 1).Normalize()
	}
	p.permX = perlinPermutation(random)
	p.permY = perlinPermutation(random)
	p.permZ = perlinPermutation(random)
	return p
}

func perlinPermutation(random *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise returns a value in roughly [-1, 1] that varies smoothly with point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVecs[idx]
			}
		}
	}
	return perlinInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterp is a Hermite-smoothed trilinear interpolation of the lattice gradients
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// NoiseTexture is a marble-like pattern built from Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

const noiseTurbulenceDepth = 7

// NewNoiseTexture creates a marble texture; random seeds its Perlin tables
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), Scale: scale}
}

func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	amount := 1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, noiseTurbulenceDepth))
	return core.NewVec3(1, 1, 1).Multiply(0.5 * amount)
}
