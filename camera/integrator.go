package camera

import (
	"render-engine/geometry"
	"render-engine/material"
)

// World is the capability the integrator needs from a scene: closest-hit
// traversal within an interval. Satisfied by *accel.BVH and *scene.Scene
// (and by stub worlds in the tests), kept as a small interface here so the camera
// package does not depend on the acceleration structure's concrete type.
type World interface {
	Hit(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool
}

// Radiance recursively estimates incoming light along r, up to depth
// bounces. depth=0 returns black. A hit that scatters recurses with the
// attenuation folded into the throughput; a hit that does not scatter (a
// diffuse emitter) contributes its emission instead; a miss contributes the
// background gradient.
func Radiance(world World, r geometry.Ray, depth int) geometry.Vector {
	if depth <= 0 {
		return material.Black
	}

	var rec material.HitRecord
	if !world.Hit(r, geometry.Primary(), &rec) {
		return background(r.Direction)
	}

	var attenuation geometry.Vector
	var scattered geometry.Ray
	if rec.Mat.Scatter(r, &rec, &attenuation, &scattered) {
		return attenuation.MulElem(Radiance(world, scattered, depth-1))
	}
	return rec.Mat.Emitted(rec.U, rec.V, rec.P)
}

// background is the sky gradient a ray that escapes the scene samples:
// a vertical lerp between white and a pale blue, keyed on the ray's
// normalized y direction.
func background(direction geometry.Vector) geometry.Vector {
	unitDir := direction.Normalize()
	a := 0.5 * (unitDir.Y() + 1.0)
	white := geometry.NewDirection(1.0, 1.0, 1.0)
	skyBlue := geometry.NewDirection(0.5, 0.7, 1.0)
	return geometry.Lerp(white, skyBlue, a)
}

// RenderPixel averages SamplesPerPixel antialiased samples at (i,j) through
// world and applies the recursive radiance estimator, returning the raw
// (pre-gamma) linear colour.
func (c *Camera) RenderPixel(world World, i, j int) geometry.Vector {
	sum := geometry.NewDirection(0, 0, 0)
	for s := 0; s < c.SamplesPerPixel; s++ {
		r := c.SampleRay(i, j, s)
		sum = sum.Add(Radiance(world, r, c.MaxBounces))
	}
	return sum.Scale(1 / float64(c.SamplesPerPixel))
}
