package material

import "render-engine/geometry"

// DiffuseEmitter never scatters; it returns the texture-sampled emission at
// the hit point. Used for light sources.
type DiffuseEmitter struct {
	Tex Texture
}

func NewDiffuseEmitter(emit geometry.Vector) *DiffuseEmitter {
	return &DiffuseEmitter{Tex: SolidColor{Color: emit}}
}

func (m *DiffuseEmitter) Scatter(rIn geometry.Ray, rec *HitRecord, attenuation *geometry.Vector, scattered *geometry.Ray) bool {
	return false
}

func (m *DiffuseEmitter) Emitted(u, v float64, p geometry.Vector) geometry.Vector {
	return m.Tex.Value(u, v, p)
}
