// Package accel implements the bucketed SAH BVH (C4): construction that
// chooses, per node, between a leaf and a split using the surface-area
// heuristic over 12 buckets, and recursive slab-pruned traversal.
package accel

import (
	"math"

	"render-engine/geometry"
	"render-engine/material"
	"render-engine/shapes"
)

const numBuckets = 12

// primitive pairs a shape with its precomputed bounds, so bounds are
// computed once up front rather than on every partition pass.
type primitive struct {
	shape  shapes.Shape
	bounds geometry.Bounds
}

func (p primitive) centroid() geometry.Vector {
	return p.bounds.Center()
}

// Node is one node of the BVH tree: either an internal split (Left/Right
// non-nil, Prims nil) or a leaf (Prims non-empty, Left/Right nil).
type Node struct {
	Bounds geometry.Bounds
	Left   *Node
	Right  *Node
	Prims  []shapes.Shape
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BVH is the top-level aggregate: a built tree plus the ray-intersection
// entry point used in place of a linear scan over the scene's shapes.
type BVH struct {
	root *Node
}

// Build constructs a BVH over prims. maxPrimsInNode caps how many
// primitives a leaf may hold before the builder prefers a split outright.
// The one exception: when the union of a node's primitive bounds has zero
// extent on every axis, all of its primitives go into a single leaf whatever
// their count. An empty input yields a BVH with a nil root, which Hit treats
// as a miss.
func Build(prims []shapes.Shape, maxPrimsInNode int) *BVH {
	if len(prims) == 0 {
		return &BVH{root: nil}
	}
	if maxPrimsInNode < 1 {
		maxPrimsInNode = 1
	}
	wrapped := make([]primitive, len(prims))
	for i, s := range prims {
		wrapped[i] = primitive{shape: s, bounds: s.Bounds()}
	}
	return &BVH{root: sahRecursive(wrapped, maxPrimsInNode)}
}

// bucket accumulates the bounds and count of primitives whose centroid
// falls in one of the 12 bins along the split axis.
type bucket struct {
	count  int
	bounds geometry.Bounds
}

// sahRecursive builds one node from prims, choosing between a leaf and a
// bucketed SAH split exactly as the reference aggregate does: bin
// centroids along the node's longest axis into 12 buckets, accumulate
// split costs by sweeping from both ends, and compare the cheapest split
// against the cost of just making a leaf.
func sahRecursive(prims []primitive, maxPrimsInNode int) *Node {
	node := &Node{}

	bounds := geometry.EmptyBounds()
	for _, p := range prims {
		bounds = geometry.Union(bounds, p.bounds)
	}
	node.Bounds = bounds

	if len(prims) <= 1 {
		node.Prims = leafShapes(prims)
		return node
	}

	axis := bounds.LongestAxis()
	axisLen := bounds.AxisLength(axis)
	if axisLen <= 0 {
		node.Prims = leafShapes(prims)
		return node
	}

	bucketWidth := axisLen / numBuckets
	buckets := make([]bucket, numBuckets)
	for i := range buckets {
		buckets[i].bounds = geometry.EmptyBounds()
	}

	bucketIndex := func(p primitive) int {
		b := int(math.Floor((p.centroid().Component(axis) - bounds.Min.Component(axis)) / bucketWidth))
		if b < 0 {
			b = 0
		}
		if b > numBuckets-1 {
			b = numBuckets - 1
		}
		return b
	}

	for _, p := range prims {
		b := bucketIndex(p)
		buckets[b].count++
		buckets[b].bounds = geometry.Union(buckets[b].bounds, p.bounds)
	}

	numSplits := numBuckets - 1
	costs := make([]float64, numSplits)

	boundBelow := geometry.EmptyBounds()
	numLeft := 0
	for i := 0; i < numSplits; i++ {
		boundBelow = geometry.Union(boundBelow, buckets[i].bounds)
		numLeft += buckets[i].count
		costs[i] += float64(numLeft) * boundBelow.SurfaceArea()
	}

	boundAbove := geometry.EmptyBounds()
	numRight := 0
	for i := numSplits; i >= 1; i-- {
		boundAbove = geometry.Union(boundAbove, buckets[i].bounds)
		numRight += buckets[i].count
		costs[i-1] += float64(numRight) * boundAbove.SurfaceArea()
	}

	lowestSplit := -1
	lowestCost := math.Inf(1)
	for i := 0; i < numSplits; i++ {
		if costs[i] < lowestCost {
			lowestCost = costs[i]
			lowestSplit = i
		}
	}

	leafCost := float64(len(prims))
	// Guarded against flat/collinear primitive sets, where bounds.SurfaceArea()
	// is exactly 0 and an unguarded division would produce a NaN that defeats
	// the leafCost<=splitCost comparison below instead of falling back cleanly.
	splitCost := 0.5 + lowestCost/math.Max(bounds.SurfaceArea(), 1e-6)

	if leafCost <= splitCost && int(leafCost) <= maxPrimsInNode {
		node.Prims = leafShapes(prims)
		return node
	}

	var left, right []primitive
	for _, p := range prims {
		if bucketIndex(p) <= lowestSplit {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	if lowestSplit == -1 || len(left) == 0 || len(right) == 0 {
		left, right = medianSplit(prims, axis)
	}

	if len(left) > 0 {
		node.Left = sahRecursive(left, maxPrimsInNode)
	}
	if len(right) > 0 {
		node.Right = sahRecursive(right, maxPrimsInNode)
	}
	return node
}

// medianSplit is the fallback partition when the bucketed SAH split
// degenerates (every primitive landed in one bucket, or the cheapest
// split bucket put everything on one side): sort by centroid along axis
// and split at the midpoint.
func medianSplit(prims []primitive, axis int) (left, right []primitive) {
	sorted := make([]primitive, len(prims))
	copy(sorted, prims)
	insertionSortByCentroid(sorted, axis)
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

func insertionSortByCentroid(prims []primitive, axis int) {
	for i := 1; i < len(prims); i++ {
		key := prims[i]
		keyVal := key.centroid().Component(axis)
		j := i - 1
		for j >= 0 && prims[j].centroid().Component(axis) > keyVal {
			prims[j+1] = prims[j]
			j--
		}
		prims[j+1] = key
	}
}

func leafShapes(prims []primitive) []shapes.Shape {
	out := make([]shapes.Shape, len(prims))
	for i, p := range prims {
		out[i] = p.shape
	}
	return out
}

// Hit finds the closest intersection along r within iv, narrowing iv.Max
// to each successful hit's t so later subtrees only need to beat the
// current closest distance. A nil root (empty scene) always misses.
func (b *BVH) Hit(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	if b.root == nil {
		return false
	}
	return hitNode(b.root, r, iv, hit)
}

func hitNode(n *Node, r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	if !n.Bounds.Hit(r, iv) {
		return false
	}

	if n.isLeaf() {
		hitAnything := false
		for _, s := range n.Prims {
			if s.Intersect(r, iv, hit) {
				hitAnything = true
				iv = iv.WithMax(hit.T)
			}
		}
		return hitAnything
	}

	hitAnything := false
	if n.Left != nil && hitNode(n.Left, r, iv, hit) {
		hitAnything = true
		iv = iv.WithMax(hit.T)
	}
	if n.Right != nil && hitNode(n.Right, r, iv, hit) {
		hitAnything = true
	}
	return hitAnything
}

// Bounds returns the overall bounding box of the tree; an empty BVH
// reports an empty bounds value.
func (b *BVH) Bounds() geometry.Bounds {
	if b.root == nil {
		return geometry.EmptyBounds()
	}
	return b.root.Bounds
}
