package geometry

import (
	"math"
	"math/rand"
)

// Sampler is a uniform [0,1) generator with explicit, seeded state (a
// math/rand.Rand) rather than the package-global RNG. It is not safe for
// concurrent use; the demo renderer shares one Sampler between the camera and
// its materials on a single goroutine.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler seeds a new sampler. Two samplers seeded with the same value
// produce identical sequences, which is what makes per-thread determinism
// possible under parallel rendering.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0,1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [min,max).
func (s *Sampler) Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// UnitVector samples a direction uniformly on the unit sphere via rejection
// sampling inside the unit cube.
func (s *Sampler) UnitVector() Vector {
	for {
		p := NewDirection(s.Range(-1, 1), s.Range(-1, 1), s.Range(-1, 1))
		lensq := p.MagnitudeSquared()
		if lensq > 1e-160 && lensq <= 1 {
			return p.Scale(1 / math.Sqrt(lensq))
		}
	}
}

// OnHemisphere samples a unit vector on the hemisphere around normal,
// flipping the rejection-sampled unit vector if it points into the surface.
func (s *Sampler) OnHemisphere(normal Vector) Vector {
	onUnitSphere := s.UnitVector()
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// Lerp64 linearly interpolates two scalars.
func Lerp64(a, b, t float64) float64 {
	return a + t*(b-a)
}
