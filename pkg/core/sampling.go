package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a uniform random float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// RandomVec3Range returns a vector with each component uniform in [min, max)
func RandomVec3Range(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		RandomRange(random, min, max),
		RandomRange(random, min, max),
		RandomRange(random, min, max),
	)
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3Range(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	a := RandomRange(random, 0, 2*math.Pi)
	z := RandomRange(random, -1, 1)
	r := math.Sqrt(1 - z*z)
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomRange(random, -1, 1), RandomRange(random, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
