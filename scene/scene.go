// Package scene assembles shapes and materials into a traversable world,
// collecting primitives first and building the BVH when Build is called,
// before the renderer starts consuming it.
package scene

import (
	"render-engine/accel"
	"render-engine/geometry"
	"render-engine/material"
	"render-engine/shapes"
)

// DefaultMaxPrimsInNode is the SAH leaf-size cap used when none is supplied.
const DefaultMaxPrimsInNode = 4

// Scene is an immutable-after-Build collection of shapes backed by a BVH for
// traversal. Shapes and materials must not be mutated once Build has run —
// the tree caches bounds computed at build time.
type Scene struct {
	Shapes         []shapes.Shape
	MaxPrimsInNode int

	bvh *accel.BVH
}

// NewScene returns an empty scene with the default leaf-size cap.
func NewScene() *Scene {
	return &Scene{MaxPrimsInNode: DefaultMaxPrimsInNode}
}

// Add appends a shape to the scene. Call before Build.
func (s *Scene) Add(shape shapes.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddMesh appends every triangle of mesh as an individual primitive.
func (s *Scene) AddMesh(mesh *shapes.Mesh) {
	s.Shapes = append(s.Shapes, mesh.Triangles()...)
}

// Build constructs the BVH over the scene's current shapes. Safe to call
// again after adding more shapes; it rebuilds the tree from scratch.
func (s *Scene) Build() {
	maxPrims := s.MaxPrimsInNode
	if maxPrims < 1 {
		maxPrims = DefaultMaxPrimsInNode
	}
	s.bvh = accel.Build(s.Shapes, maxPrims)
}

// Hit satisfies camera.World: closest-hit traversal through the built BVH.
// Hit on a scene whose Build has not run always misses, since there is no
// BVH to traverse yet.
func (s *Scene) Hit(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	if s.bvh == nil {
		return false
	}
	return s.bvh.Hit(r, iv, hit)
}

// Bounds returns the world-space bounds of the built scene.
func (s *Scene) Bounds() geometry.Bounds {
	if s.bvh == nil {
		return geometry.EmptyBounds()
	}
	return s.bvh.Bounds()
}
