package shapes

import (
	"math"

	"render-engine/geometry"
	"render-engine/material"
)

// Sphere intersects analytically by solving at²−2ht+c=0 for
// a = D·D, h = D·(C−O), c = (C−O)·(C−O) − r². Grounded in the original
// sphere::hit, with bounds built the same AABB-construction way as the
// ray-casting helper it was adapted from.
type Sphere struct {
	Center geometry.Vector
	Radius float64
	Mat    material.Material
}

// NewSphere clamps a negative radius to zero: a zero-radius sphere degenerates
// to a miss on every ray rather than an error.
func NewSphere(center geometry.Vector, radius float64, mat material.Material) *Sphere {
	if radius < 0 {
		radius = 0
	}
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

func (s *Sphere) Bounds() geometry.Bounds {
	r := geometry.NewDirection(s.Radius, s.Radius, s.Radius)
	return geometry.NewBounds(s.Center.Sub(r), s.Center.Add(r))
}

func (s *Sphere) Intersect(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	if s.Radius <= 0 {
		return false
	}
	oc := s.Center.Sub(r.Origin)
	a := r.Direction.Dot(r.Direction)
	h := r.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !iv.Surrounds(root) {
		root = (h + sqrtd) / a
		if !iv.Surrounds(root) {
			return false
		}
	}

	hit.T = root
	hit.P = r.At(root)
	outwardNormal := hit.P.Sub(s.Center).Scale(1 / s.Radius)
	hit.SetFaceNormal(r, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.Mat = s.Mat
	return true
}

// sphereUV maps a point on the unit sphere (outward normal) to spherical
// (u,v): u=atan2(−z,x)/(2π)+½, v=acos(−y)/π.
func sphereUV(p geometry.Vector) (u, v float64) {
	u = math.Atan2(-p.Z(), p.X())/(2*math.Pi) + 0.5
	v = math.Acos(-p.Y()) / math.Pi
	return u, v
}
