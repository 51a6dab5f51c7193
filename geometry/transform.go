package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform wraps a 4×4 affine matrix built from mgl64's matrix
// constructors (C8: translate/scale/rotate/axis-angle/lookAt/perspective).
type Transform struct {
	m mgl64.Mat4
}

func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

func Translate(delta Vector) Transform {
	return Transform{m: mgl64.Translate3D(delta.X(), delta.Y(), delta.Z())}
}

func Scale(s Vector) Transform {
	return Transform{m: mgl64.Scale3D(s.X(), s.Y(), s.Z())}
}

func RotateX(radians float64) Transform {
	return Transform{m: mgl64.HomogRotate3DX(radians)}
}

func RotateY(radians float64) Transform {
	return Transform{m: mgl64.HomogRotate3DY(radians)}
}

func RotateZ(radians float64) Transform {
	return Transform{m: mgl64.HomogRotate3DZ(radians)}
}

// RotateAxisAngle builds a rotation of `radians` about `axis` (need not be
// pre-normalized; mgl64 normalizes internally).
func RotateAxisAngle(axis Vector, radians float64) Transform {
	return Transform{m: mgl64.HomogRotate3D(radians, axis.mgl())}
}

// LookAt builds a view transform for a camera at eye looking toward target
// with the given world-up hint.
func LookAt(eye, target, up Vector) Transform {
	return Transform{m: mgl64.LookAtV(eye.mgl(), target.mgl(), up.mgl())}
}

// Perspective builds a right-handed perspective projection; fovY is in radians.
func Perspective(fovY, aspect, near, far float64) Transform {
	return Transform{m: mgl64.Perspective(fovY, aspect, near, far)}
}

// Mul composes transforms so that (a.Mul(b)).Apply(p) == a.Apply(b.Apply(p)).
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul4(other.m)}
}

// ApplyPoint transforms a position (w=1 semantics), dividing by the
// resulting homogeneous w when it is not 1 (e.g. after a perspective transform).
func (t Transform) ApplyPoint(p Vector) Vector {
	v4 := t.m.Mul4x1(mgl64.Vec4{p.X(), p.Y(), p.Z(), 1})
	if math.Abs(v4[3]-1) > 1e-12 && v4[3] != 0 {
		return NewPoint(v4[0]/v4[3], v4[1]/v4[3], v4[2]/v4[3])
	}
	return NewPoint(v4[0], v4[1], v4[2])
}

// ApplyVector transforms a direction (w=0 semantics): translation has no effect.
func (t Transform) ApplyVector(d Vector) Vector {
	v4 := t.m.Mul4x1(mgl64.Vec4{d.X(), d.Y(), d.Z(), 0})
	return NewDirection(v4[0], v4[1], v4[2])
}

// Inverse returns the inverse transform.
func (t Transform) Inverse() Transform {
	return Transform{m: t.m.Inv()}
}
