// Package geometry implements the vector, ray, interval, bounds, transform
// and sampling primitives the rest of the path tracer is built on.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a homogeneous 4-tuple (x,y,z,w). w=1 marks a position, w=0 marks
// a direction. Arithmetic operates on xyz only; w follows the max rule on
// Add/Sub so that combining a point with a direction still yields a point.
type Vector struct {
	v mgl64.Vec3
	W float64
}

// NewPoint builds a position vector (w=1).
func NewPoint(x, y, z float64) Vector {
	return Vector{v: mgl64.Vec3{x, y, z}, W: 1}
}

// NewDirection builds a direction vector (w=0).
func NewDirection(x, y, z float64) Vector {
	return Vector{v: mgl64.Vec3{x, y, z}, W: 0}
}

var (
	Zero = NewDirection(0, 0, 0)
	Up   = NewDirection(0, 1, 0)
)

func (a Vector) X() float64 { return a.v[0] }
func (a Vector) Y() float64 { return a.v[1] }
func (a Vector) Z() float64 { return a.v[2] }

func maxW(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Add sums the xyz components; w is the max of the two operands' w.
func (a Vector) Add(b Vector) Vector {
	return Vector{v: a.v.Add(b.v), W: maxW(a.W, b.W)}
}

// Sub subtracts the xyz components; w is the max of the two operands' w.
func (a Vector) Sub(b Vector) Vector {
	return Vector{v: a.v.Sub(b.v), W: maxW(a.W, b.W)}
}

// Scale multiplies xyz by a scalar; w is preserved.
func (a Vector) Scale(t float64) Vector {
	return Vector{v: a.v.Mul(t), W: a.W}
}

// MulElem multiplies xyz componentwise (used for colour attenuation); w is preserved.
func (a Vector) MulElem(b Vector) Vector {
	return Vector{v: mgl64.Vec3{a.v[0] * b.v[0], a.v[1] * b.v[1], a.v[2] * b.v[2]}, W: a.W}
}

func (a Vector) Dot(b Vector) float64 {
	return a.v.Dot(b.v)
}

func (a Vector) Cross(b Vector) Vector {
	return Vector{v: a.v.Cross(b.v), W: 0}
}

// Magnitude uses xyz only, per the w-tag invariant.
func (a Vector) Magnitude() float64 {
	return a.v.Len()
}

func (a Vector) MagnitudeSquared() float64 {
	return a.v.Dot(a.v)
}

// Normalize scales xyz to unit length; w is unchanged.
func (a Vector) Normalize() Vector {
	length := a.Magnitude()
	if length == 0 {
		return a
	}
	return Vector{v: a.v.Mul(1 / length), W: a.W}
}

func (a Vector) Negate() Vector {
	return Vector{v: a.v.Mul(-1), W: a.W}
}

// NearZero reports whether all xyz components are close to zero, used to
// catch degenerate Lambertian scatter directions.
func (a Vector) NearZero() bool {
	const eps = 1e-8
	return math.Abs(a.v[0]) < eps && math.Abs(a.v[1]) < eps && math.Abs(a.v[2]) < eps
}

// Lerp linearly interpolates xyz; w follows the max rule.
func Lerp(a, b Vector, t float64) Vector {
	return Vector{v: a.v.Mul(1 - t).Add(b.v.Mul(t)), W: maxW(a.W, b.W)}
}

// Component returns the xyz component at the given axis index (0,1,2).
func (a Vector) Component(axis int) float64 {
	return a.v[axis]
}

func (a Vector) mgl() mgl64.Vec3 { return a.v }
