package camera

import (
	"math"
	"testing"

	"render-engine/geometry"
	"render-engine/material"
)

func validConfig() Config {
	return Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		VerticalFOV:     90,
		Center:          geometry.NewPoint(0, 0, 0),
		LookAt:          geometry.NewPoint(0, 0, -1),
		FocusDist:       1,
		SamplesPerPixel: 10,
		MaxBounces:      10,
		Sampler:         geometry.NewSampler(1),
	}
}

func TestNewCameraRejectsInvalidConfig(t *testing.T) {
	cases := []func(c Config) Config{
		func(c Config) Config { c.ImageWidth = 0; return c },
		func(c Config) Config { c.AspectRatio = 0; return c },
		func(c Config) Config { c.VerticalFOV = 0; return c },
		func(c Config) Config { c.SamplesPerPixel = 0; return c },
		func(c Config) Config { c.MaxBounces = -1; return c },
		func(c Config) Config { c.FocusDist = 0; return c },
		func(c Config) Config { c.Sampler = nil; return c },
	}
	for i, mutate := range cases {
		if _, err := NewCamera(mutate(validConfig())); err == nil {
			t.Errorf("case %d: expected an error for invalid config", i)
		}
	}
}

func TestNewCameraComputesImageHeightFromAspectRatio(t *testing.T) {
	cfg := validConfig()
	cfg.ImageWidth = 400
	cfg.AspectRatio = 2.0
	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cam.ImageHeight != 200 {
		t.Errorf("expected image height 200, got %d", cam.ImageHeight)
	}
}

func TestNewCameraImageHeightFloorsToOne(t *testing.T) {
	cfg := validConfig()
	cfg.ImageWidth = 10
	cfg.AspectRatio = 1000
	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cam.ImageHeight != 1 {
		t.Errorf("expected image height to floor to 1, got %d", cam.ImageHeight)
	}
}

func TestSampleRayQuadrantsCoverAllFourSigns(t *testing.T) {
	cam, err := NewCamera(validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := cam.SampleRay(100, 100, 0)
	for q := 1; q < 4; q++ {
		r := cam.SampleRay(100, 100, q)
		if r.Direction.Sub(base.Direction).Magnitude() < 1e-12 {
			t.Errorf("quadrant %d produced an identical direction to quadrant 0", q)
		}
	}

	// Each quadrant's subpixel offset must carry the (i,j) signs listed on
	// SampleRay: (+,+), (−,−), (+,−), (−,+) for s=0..3.
	pixelCenter := cam.pixel00.Add(cam.deltaU.Scale(100)).Add(cam.deltaV.Scale(100))
	wantSigns := [4][2]float64{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	for q := 0; q < 4; q++ {
		r := cam.SampleRay(100, 100, q)
		off := cam.center.Add(r.Direction).Sub(pixelCenter)
		iOff := off.Dot(cam.deltaU) / cam.deltaU.MagnitudeSquared()
		jOff := off.Dot(cam.deltaV) / cam.deltaV.MagnitudeSquared()
		if iOff*wantSigns[q][0] < -1e-9 || jOff*wantSigns[q][1] < -1e-9 {
			t.Errorf("quadrant %d: offset (%v,%v) does not have signs (%v,%v)", q, iOff, jOff, wantSigns[q][0], wantSigns[q][1])
		}
	}
}

func TestBackgroundGradientIsWhiteStraightDown(t *testing.T) {
	c := background(geometry.NewDirection(0, -1, 0))
	if math.Abs(c.X()-1) > 1e-9 || math.Abs(c.Y()-1) > 1e-9 || math.Abs(c.Z()-1) > 1e-9 {
		t.Errorf("expected white looking straight down, got (%v,%v,%v)", c.X(), c.Y(), c.Z())
	}
}

func TestBackgroundGradientIsBlueStraightUp(t *testing.T) {
	c := background(geometry.NewDirection(0, 1, 0))
	if math.Abs(c.X()-0.5) > 1e-9 || math.Abs(c.Y()-0.7) > 1e-9 || math.Abs(c.Z()-1.0) > 1e-9 {
		t.Errorf("expected (0.5,0.7,1.0) looking straight up, got (%v,%v,%v)", c.X(), c.Y(), c.Z())
	}
}

// emptyWorld never reports a hit, so Radiance should fall through to the
// background gradient regardless of depth.
type emptyWorld struct{}

func (emptyWorld) Hit(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	return false
}

func TestRadianceZeroDepthIsBlack(t *testing.T) {
	r := geometry.NewRay(geometry.NewPoint(0, 0, 0), geometry.NewDirection(0, 0, -1))
	c := Radiance(emptyWorld{}, r, 0)
	if c.X() != 0 || c.Y() != 0 || c.Z() != 0 {
		t.Errorf("expected black at depth 0, got (%v,%v,%v)", c.X(), c.Y(), c.Z())
	}
}

func TestRadianceMissReturnsBackground(t *testing.T) {
	r := geometry.NewRay(geometry.NewPoint(0, 0, 0), geometry.NewDirection(0, 1, 0))
	c := Radiance(emptyWorld{}, r, 5)
	want := background(geometry.NewDirection(0, 1, 0))
	if math.Abs(c.X()-want.X()) > 1e-9 {
		t.Errorf("expected background colour on miss, got (%v,%v,%v)", c.X(), c.Y(), c.Z())
	}
}

// emitterWorld always reports a hit against a diffuse emitter, exercising
// the non-scattering branch of Radiance.
type emitterWorld struct {
	mat material.Material
}

func (w emitterWorld) Hit(r geometry.Ray, iv geometry.Interval, hit *material.HitRecord) bool {
	hit.T = 1
	hit.P = r.At(1)
	hit.Normal = geometry.NewDirection(0, 0, 1)
	hit.FrontFace = true
	hit.Mat = w.mat
	hit.U, hit.V = 0.5, 0.5
	return true
}

func TestRadianceEmitterReturnsEmissionWithoutRecursing(t *testing.T) {
	emit := geometry.NewDirection(4, 4, 4)
	w := emitterWorld{mat: material.NewDiffuseEmitter(emit)}
	r := geometry.NewRay(geometry.NewPoint(0, 0, 0), geometry.NewDirection(0, 0, 1))

	c := Radiance(w, r, 5)
	if math.Abs(c.X()-4) > 1e-9 || math.Abs(c.Y()-4) > 1e-9 || math.Abs(c.Z()-4) > 1e-9 {
		t.Errorf("expected emitted colour (4,4,4), got (%v,%v,%v)", c.X(), c.Y(), c.Z())
	}
}
