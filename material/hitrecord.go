package material

import "render-engine/geometry"

// HitRecord is populated by a shape's Intersect call: the intersection
// position, shading normal oriented to face the incoming ray, the front-face
// flag, the hit material, the scalar t, and the surface UV. It lives in this
// package (rather than shapes) because Material.Scatter takes one by
// reference and shapes depends on material, not the other way around.
type HitRecord struct {
	P         geometry.Vector
	Normal    geometry.Vector
	FrontFace bool
	Mat       Material
	T         float64
	U, V      float64
}

// SetFaceNormal orients Normal against the incoming ray direction, recording
// whether the hit was on the outward-facing side.
func (h *HitRecord) SetFaceNormal(r geometry.Ray, outwardNormal geometry.Vector) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
