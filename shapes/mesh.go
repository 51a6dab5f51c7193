package shapes

import (
	"render-engine/geometry"
	"render-engine/material"
)

// Mesh is a shared vertex array and index array with a shared material.
// Triangle instances reference their mesh by pointer and their own index
// into the index array, the way the original triangleMesh/triangle pairing
// works, with vertices and indices grouped per mesh.
type Mesh struct {
	Vertices []geometry.Vector // positions, w=1
	Indices  []int             // 3 per triangle
	Mat      material.Material
}

// NewMesh constructs a mesh from vertex positions and a flat triangle index
// list (3 ints per triangle), sharing mat across every triangle.
func NewMesh(vertices []geometry.Vector, indices []int, mat material.Material) *Mesh {
	return &Mesh{Vertices: vertices, Indices: indices, Mat: mat}
}

// NumTriangles returns how many triangles the index array describes.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Triangles returns one Triangle Shape per face, suitable for handing to the
// BVH builder as individual primitives.
func (m *Mesh) Triangles() []Shape {
	tris := make([]Shape, m.NumTriangles())
	for i := range tris {
		tris[i] = &Triangle{Mesh: m, Index: i}
	}
	return tris
}

// Transformed returns a new mesh instance with every vertex carried through
// t, sharing the same index array and material. This mirrors the original's
// chess.h sample, which builds a piece once and places multiple instances of
// it around the board by composing rotateX/rotateY/rotateZ/translate/scale
// and applying the result to the mesh (apply_total_transform).
func (m *Mesh) Transformed(t geometry.Transform) *Mesh {
	vertices := make([]geometry.Vector, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = t.ApplyPoint(v)
	}
	return &Mesh{Vertices: vertices, Indices: m.Indices, Mat: m.Mat}
}
