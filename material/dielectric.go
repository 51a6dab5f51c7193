package material

import (
	"math"

	"render-engine/geometry"
)

// Dielectric refracts per Snell's law, tinted by Albedo (nominally white).
// Given relative index eta (ior_outside/ior_inside when entering; its
// reciprocal when exiting, decided by the sign of D·N), it solves:
//
//	cos_i = clamp(-D̂·N̂, -1, 1); if cos_i ≤ 0 the ray is leaving, so N and
//	cos_i are flipped. sin_t = sqrt(max(0,1-cos_i²))/eta; sin_t ≥ 1 is total
//	internal reflection, handled by returning the mirror direction.
//	Otherwise cos_t = sqrt(max(0,1-sin_t²)) and the transmitted direction is
//	eta·D̂ + (eta·cos_i - cos_t)·N̂.
//
// This is a deterministic refraction: it matches
// scatter_refract/fresnel_dielectric in the original's scattering.h exactly.
// No stochastic Fresnel reflect/refract coin-flip is applied. Scatter passes
// Eta when the ray is entering the surface and its reciprocal when exiting
// (rec.FrontFace distinguishes the two), since Eta is defined as the
// outside/inside ratio and Refract always expects a relative index in that
// same entering sense.
type Dielectric struct {
	Albedo geometry.Vector
	Eta    float64 // relative index of refraction for this surface
}

func NewDielectric(albedo geometry.Vector, eta float64) *Dielectric {
	return &Dielectric{Albedo: albedo, Eta: eta}
}

// Refract computes the Snell-refracted (or, under TIR, mirror-reflected)
// direction of incoming direction d across a surface with normal n and
// relative index of refraction eta.
func Refract(d, n geometry.Vector, eta float64) geometry.Vector {
	unitD := d.Normalize()
	normal := n.Normalize()

	cosI := clamp(-unitD.Dot(normal), -1, 1)
	if cosI <= 0 {
		normal = normal.Negate()
		cosI = -cosI
	}

	sinT := math.Sqrt(math.Max(0, 1-cosI*cosI)) / eta
	if sinT >= 1 {
		return Reflect(unitD, normal)
	}

	cosT := math.Sqrt(math.Max(0, 1-sinT*sinT))
	return unitD.Scale(eta).Add(normal.Scale(eta*cosI - cosT))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (m *Dielectric) Scatter(rIn geometry.Ray, rec *HitRecord, attenuation *geometry.Vector, scattered *geometry.Ray) bool {
	eta := m.Eta
	if !rec.FrontFace {
		eta = 1 / m.Eta
	}
	direction := Refract(rIn.Direction, rec.Normal, eta)
	*scattered = geometry.NewRay(rec.P, direction)
	*attenuation = m.Albedo
	return true
}

func (m *Dielectric) Emitted(u, v float64, p geometry.Vector) geometry.Vector {
	return Black
}
