// Package shapes implements the analytic and watertight intersection
// kernels (C3): sphere, triangle, and mesh, dispatched through the Shape
// interface.
package shapes

import (
	"render-engine/geometry"
	"render-engine/material"
)

// Shape is the capability set every primitive (sphere, triangle) implements:
// its bounds for BVH construction, and ray intersection against an interval.
// HitRecord lives in the material package to avoid an import cycle (Material
// implementations need HitRecord too).
type Shape interface {
	Bounds() geometry.Bounds
	Intersect(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool
}
