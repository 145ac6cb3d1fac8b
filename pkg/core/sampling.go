package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	// UniformFloat returns a uniform value in [min, max)
	UniformFloat(min, max float64) float64
	// UnitVector returns a uniformly distributed direction on the unit sphere
	UnitVector() Vec3
	// CosineHemisphere returns a cosine-weighted unit direction about normal
	CosineHemisphere(normal Vec3) Vec3
	// InUnitDisk returns a uniform point in the unit disk on the XY plane
	InUnitDisk() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// UniformFloat returns a random float64 in [min, max)
func (r *RandomSampler) UniformFloat(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// UnitVector returns a uniform random direction on the unit sphere
func (r *RandomSampler) UnitVector() Vec3 {
	return SampleOnUnitSphere(NewVec2(r.random.Float64(), r.random.Float64()))
}

// CosineHemisphere returns a cosine-weighted random direction about normal
func (r *RandomSampler) CosineHemisphere(normal Vec3) Vec3 {
	return SampleCosineHemisphere(normal, NewVec2(r.random.Float64(), r.random.Float64()))
}

// InUnitDisk returns a random point in the unit disk
func (r *RandomSampler) InUnitDisk() Vec3 {
	return SamplePointInUnitDisk(NewVec2(r.random.Float64(), r.random.Float64()))
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Point on the unit disk, lifted onto the hemisphere
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(math.Max(0, 1.0-z))

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// OrthonormalBasis returns two unit vectors that together with n form a right-handed frame
func OrthonormalBasis(n Vec3) (Vec3, Vec3) {
	var nt Vec3
	if math.Abs(n.X) > 0.9 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(n).Normalize()
	bitangent := n.Cross(tangent)
	return tangent, bitangent
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
