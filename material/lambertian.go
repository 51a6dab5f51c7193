package material

import "render-engine/geometry"

// Lambertian scatters with attenuation = texture(u,v,p) and a new direction
// sampled as normal + random_unit_vector, falling back to the normal itself
// if that sum is near zero. Grounded in the original diffuseBXDF::scatter
// and scatter_diffuse (scattering.h), following a scottlawsonbc-raytrace-style
// Lambertian.Resolve (cosine-weighted hemisphere sampling).
type Lambertian struct {
	Tex    Texture
	Sample *geometry.Sampler
}

// NewLambertian builds a Lambertian material from a flat albedo colour.
func NewLambertian(albedo geometry.Vector, sampler *geometry.Sampler) *Lambertian {
	return &Lambertian{Tex: SolidColor{Color: albedo}, Sample: sampler}
}

// NewLambertianTexture builds a Lambertian material from an arbitrary texture.
func NewLambertianTexture(tex Texture, sampler *geometry.Sampler) *Lambertian {
	return &Lambertian{Tex: tex, Sample: sampler}
}

func (m *Lambertian) Scatter(rIn geometry.Ray, rec *HitRecord, attenuation *geometry.Vector, scattered *geometry.Ray) bool {
	direction := rec.Normal.Add(m.Sample.UnitVector())
	if direction.NearZero() {
		direction = rec.Normal
	}
	*scattered = geometry.NewRay(rec.P, direction)
	*attenuation = m.Tex.Value(rec.U, rec.V, rec.P)
	return true
}

func (m *Lambertian) Emitted(u, v float64, p geometry.Vector) geometry.Vector {
	return Black
}
