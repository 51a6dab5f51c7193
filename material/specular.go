package material

import "render-engine/geometry"

// Specular is a perfectly smooth mirror: attenuation = albedo (tinted),
// direction = D − 2(D·N)N, origin = hit position. No glossiness parameter.
// Grounded in the original specularBXDF::scatter / scatter_reflect.
type Specular struct {
	Albedo geometry.Vector
}

func NewSpecular(albedo geometry.Vector) *Specular {
	return &Specular{Albedo: albedo}
}

// Reflect computes the mirror-reflection direction of d about normal n.
func Reflect(d, n geometry.Vector) geometry.Vector {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

func (m *Specular) Scatter(rIn geometry.Ray, rec *HitRecord, attenuation *geometry.Vector, scattered *geometry.Ray) bool {
	direction := Reflect(rIn.Direction, rec.Normal)
	*scattered = geometry.NewRay(rec.P, direction)
	*attenuation = m.Albedo
	return true
}

func (m *Specular) Emitted(u, v float64, p geometry.Vector) geometry.Vector {
	return Black
}
