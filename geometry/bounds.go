package geometry

import "math"

// Bounds is an axis-aligned bounding box with pmin ≤ pmax componentwise.
// The zero value is not a valid empty box — use EmptyBounds.
type Bounds struct {
	Min, Max Vector
}

// EmptyBounds initializes pmin=+∞, pmax=−∞ so that Union with any point or
// box produces the expected minimal enclosing box.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: NewPoint(inf, inf, inf),
		Max: NewPoint(-inf, -inf, -inf),
	}
}

// NewBounds builds bounds from two corner points, reordering componentwise
// so Min ≤ Max.
func NewBounds(a, b Vector) Bounds {
	return Bounds{
		Min: NewPoint(math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())),
		Max: NewPoint(math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())),
	}
}

// UnionPoint expands bounds to include p.
func (b Bounds) UnionPoint(p Vector) Bounds {
	return Bounds{
		Min: NewPoint(math.Min(b.Min.X(), p.X()), math.Min(b.Min.Y(), p.Y()), math.Min(b.Min.Z(), p.Z())),
		Max: NewPoint(math.Max(b.Max.X(), p.X()), math.Max(b.Max.Y(), p.Y()), math.Max(b.Max.Z(), p.Z())),
	}
}

// Union returns the smallest bounds enclosing both a and b.
func Union(a, b Bounds) Bounds {
	return Bounds{
		Min: NewPoint(math.Min(a.Min.X(), b.Min.X()), math.Min(a.Min.Y(), b.Min.Y()), math.Min(a.Min.Z(), b.Min.Z())),
		Max: NewPoint(math.Max(a.Max.X(), b.Max.X()), math.Max(a.Max.Y(), b.Max.Y()), math.Max(a.Max.Z(), b.Max.Z())),
	}
}

func (b Bounds) Diagonal() Vector {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the box's surface area, guarded against a negative or
// degenerate diagonal collapsing to NaN.
func (b Bounds) SurfaceArea() float64 {
	d := b.Diagonal()
	dx, dy, dz := math.Max(d.X(), 0), math.Max(d.Y(), 0), math.Max(d.Z(), 0)
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// LongestAxis returns 0/1/2 for x/y/z, the axis with the largest extent.
func (b Bounds) LongestAxis() int {
	d := b.Diagonal()
	if d.X() > d.Y() && d.X() > d.Z() {
		return 0
	}
	if d.Y() > d.Z() {
		return 1
	}
	return 2
}

// AxisLength returns the box's extent along the given axis (0/1/2).
func (b Bounds) AxisLength(axis int) float64 {
	return b.Max.Component(axis) - b.Min.Component(axis)
}

func (b Bounds) Center() Vector {
	return Lerp(b.Min, b.Max, 0.5)
}

// Hit runs the slab test against ray within interval iv. On entry per axis:
// t1=(pmin−O)·invD, t2=(pmax−O)·invD, swapped when the invD component is
// negative; tmin/tmax accumulate across axes, and a hit additionally
// requires tmin < iv.Max ∧ tmax > iv.Min.
func (b Bounds) Hit(r Ray, iv Interval) bool {
	tmin, tmax := iv.Min, iv.Max

	for axis := 0; axis < 3; axis++ {
		invD := r.InvDir.Component(axis)
		t1 := (b.Min.Component(axis) - r.Origin.Component(axis)) * invD
		t2 := (b.Max.Component(axis) - r.Origin.Component(axis)) * invD
		if invD < 0 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}

	return tmin < iv.Max && tmax > iv.Min
}
