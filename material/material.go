// Package material implements the BXDF contract (C6): Lambertian, specular,
// dielectric refraction, and a diffuse emitter, each dispatched through the
// Material interface. Grounded in the original source's bxdf.h/diffuseBXDF.h/
// specularBXDF.h/refractiveBXDF.h and a scottlawsonbc-raytrace-style
// Lambertian/Metal material pairing, using a struct-of-parameters shape for
// each variant.
package material

import "render-engine/geometry"

// Material is the scattering contract: Scatter returns false to terminate a
// path (absorption or pure emission); otherwise it sets attenuation (an
// elementwise multiplier) and the next ray. Emitted returns the radiance a
// material emits at a surface point, used by emitters (everything else
// returns black).
type Material interface {
	Scatter(rIn geometry.Ray, rec *HitRecord, attenuation *geometry.Vector, scattered *geometry.Ray) bool
	Emitted(u, v float64, p geometry.Vector) geometry.Vector
}

// Black is the zero radiance/attenuation value returned by materials with no
// emission.
var Black = geometry.NewDirection(0, 0, 0)
