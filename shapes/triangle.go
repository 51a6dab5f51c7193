package shapes

import (
	"render-engine/geometry"
	"render-engine/material"
)

// Triangle references a shared Mesh by a stable handle (pointer) plus its
// own face index, rather than owning its own vertex data.
type Triangle struct {
	Mesh  *Mesh
	Index int
}

func (t *Triangle) vertices() (p0, p1, p2 geometry.Vector) {
	i0 := t.Mesh.Indices[3*t.Index]
	i1 := t.Mesh.Indices[3*t.Index+1]
	i2 := t.Mesh.Indices[3*t.Index+2]
	return t.Mesh.Vertices[i0], t.Mesh.Vertices[i1], t.Mesh.Vertices[i2]
}

func (t *Triangle) Bounds() geometry.Bounds {
	p0, p1, p2 := t.vertices()
	b := geometry.NewBounds(p0, p1)
	return b.UnionPoint(p2)
}

// triangleArea returns the parallelogram-half area of the triangle (0,0) for
// degenerate/zero-area triangles.
func triangleArea(p0, p1, p2 geometry.Vector) float64 {
	a := p1.Sub(p0)
	b := p2.Sub(p0)
	return 0.5 * a.Cross(b).Magnitude()
}

// Intersect implements the Pharr–Jakob–Humphreys watertight ray–triangle
// test: translate so the ray starts at the origin, permute axes so the ray
// direction's largest component becomes z, shear so the ray becomes the +z
// axis, then test the edge functions e0,e1,e2 for a consistent sign.
// Degenerate (zero-area) triangles reject immediately.
func (t *Triangle) Intersect(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	p0, p1, p2 := t.vertices()

	if triangleArea(p0, p1, p2) == 0 {
		return false
	}

	// 1. Translate vertices by −O.
	p0t := p0.Sub(r.Origin)
	p1t := p1.Sub(r.Origin)
	p2t := p2.Sub(r.Origin)

	// 2. Permute axes so the largest |component| of the ray direction
	// becomes z.
	dir := r.Direction
	kz := maxDimension(dir)
	kx := (kz + 1) % 3
	ky := (kx + 1) % 3

	dirP := permute(dir, kx, ky, kz)
	p0p := permute(p0t, kx, ky, kz)
	p1p := permute(p1t, kx, ky, kz)
	p2p := permute(p2t, kx, ky, kz)

	// 3. Shear: (sx,sy,sz) = (−Dx/Dz, −Dy/Dz, 1/Dz) applied to each vertex,
	// scaling z by sz. After this the ray is the +z axis from the origin.
	sx := -dirP.X() / dirP.Z()
	sy := -dirP.Y() / dirP.Z()
	sz := 1 / dirP.Z()

	p0s := shear(p0p, sx, sy, sz)
	p1s := shear(p1p, sx, sy, sz)
	p2s := shear(p2p, sx, sy, sz)

	// 4. Edge functions.
	e0 := p1s.X()*p2s.Y() - p1s.Y()*p2s.X()
	e1 := p2s.X()*p0s.Y() - p2s.Y()*p0s.X()
	e2 := p0s.X()*p1s.Y() - p0s.Y()*p1s.X()

	allNonNeg := e0 >= 0 && e1 >= 0 && e2 >= 0
	allNonPos := e0 <= 0 && e1 <= 0 && e2 <= 0
	if !allNonNeg && !allNonPos {
		return false
	}
	det := e0 + e1 + e2
	if det == 0 {
		return false
	}

	// 5. Barycentrics and t.
	invDet := 1 / det
	b0 := e0 * invDet
	b1 := e1 * invDet
	b2 := e2 * invDet
	tHit := b0*p0s.Z() + b1*p1s.Z() + b2*p2s.Z()

	if !iv.Contains(tHit) {
		return false
	}

	hit.T = tHit
	hit.P = r.At(tHit)
	hit.U, hit.V = b1, b2

	// 6. Surface normal oriented against the incoming ray.
	outwardNormal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	hit.SetFaceNormal(r, outwardNormal)
	hit.Mat = t.Mesh.Mat
	return true
}

// maxDimension returns the axis index (0,1,2) of v's largest-magnitude component.
func maxDimension(v geometry.Vector) int {
	ax, ay, az := abs(v.X()), abs(v.Y()), abs(v.Z())
	if ax > ay && ax > az {
		return 0
	}
	if ay > az {
		return 1
	}
	return 2
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// permute reorders v's components so that component kz becomes z, with kx,
// ky filling x,y in that order.
func permute(v geometry.Vector, kx, ky, kz int) geometry.Vector {
	c := [3]float64{v.X(), v.Y(), v.Z()}
	return geometry.NewDirection(c[kx], c[ky], c[kz])
}

// shear applies (sx,sy,sz) to a permuted vertex: x and y are offset by the
// *unscaled* z before z itself is scaled by sz.
func shear(v geometry.Vector, sx, sy, sz float64) geometry.Vector {
	z := v.Z()
	return geometry.NewDirection(v.X()+z*sx, v.Y()+z*sy, z*sz)
}
