// Package camera builds the viewport from a scene configuration and
// generates antialiased sample rays per pixel (C7).
package camera

import (
	"fmt"
	"math"

	"render-engine/geometry"
)

// Config describes everything needed to construct a Camera. Angles are in
// degrees; NewCamera converts to radians internally.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	VerticalFOV     float64 // degrees
	Center          geometry.Vector
	LookAt          geometry.Vector
	TiltDegrees     float64 // rotation about the view direction
	FocusDist       float64
	SamplesPerPixel int
	MaxBounces      int
	Sampler         *geometry.Sampler // shared with the materials so one stream drives jitter and scattering
}

// Camera holds the resolved viewport geometry used to generate sample rays.
type Camera struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxBounces      int

	center    geometry.Vector
	pixel00   geometry.Vector
	deltaU    geometry.Vector
	deltaV    geometry.Vector
	sampler   *geometry.Sampler
}

// NewCamera validates cfg and resolves the viewport basis. Configuration is
// checked fail-fast here, the way the rest of the renderer validates at its
// boundaries (meshio.Load, imageio.WritePPM), rather than producing a camera
// that fails lazily mid-render.
func NewCamera(cfg Config) (*Camera, error) {
	if cfg.ImageWidth <= 0 {
		return nil, fmt.Errorf("camera: image width must be positive, got %d", cfg.ImageWidth)
	}
	if cfg.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be positive, got %v", cfg.AspectRatio)
	}
	if cfg.VerticalFOV <= 0 || cfg.VerticalFOV >= 180 {
		return nil, fmt.Errorf("camera: vertical fov must be in (0,180) degrees, got %v", cfg.VerticalFOV)
	}
	if cfg.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("camera: samples per pixel must be positive, got %d", cfg.SamplesPerPixel)
	}
	if cfg.MaxBounces < 0 {
		return nil, fmt.Errorf("camera: max bounces must be non-negative, got %d", cfg.MaxBounces)
	}
	if cfg.FocusDist <= 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive, got %v", cfg.FocusDist)
	}
	if cfg.Sampler == nil {
		return nil, fmt.Errorf("camera: sampler must not be nil")
	}

	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	theta := degreesToRadians(cfg.VerticalFOV)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(imageHeight))

	w := cfg.Center.Sub(cfg.LookAt).Normalize()
	worldUp := geometry.Up
	u := worldUp.Cross(w).Normalize()
	v := w.Cross(u).Normalize()

	viewportU := u.Scale(viewportWidth)
	viewportV := v.Scale(-viewportHeight)

	deltaU := viewportU.Scale(1 / float64(cfg.ImageWidth))
	deltaV := viewportV.Scale(1 / float64(imageHeight))

	tilt := degreesToRadians(cfg.TiltDegrees)
	if tilt != 0 {
		rot := geometry.RotateAxisAngle(w, tilt)
		deltaU = rot.ApplyVector(deltaU)
		deltaV = rot.ApplyVector(deltaV)
	}

	viewportUpperLeft := cfg.Center.Sub(w.Scale(cfg.FocusDist)).Sub(viewportU.Scale(0.5)).Sub(viewportV.Scale(0.5))
	pixel00 := viewportUpperLeft.Add(deltaU.Add(deltaV).Scale(0.5))

	return &Camera{
		ImageWidth:      cfg.ImageWidth,
		ImageHeight:     imageHeight,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxBounces:      cfg.MaxBounces,
		center:          cfg.Center,
		pixel00:         pixel00,
		deltaU:          deltaU,
		deltaV:          deltaV,
		sampler:         cfg.Sampler,
	}, nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// SampleRay generates one antialiased sample ray for pixel (i,j). s selects
// one of four stratified subpixel quadrants via s mod 4: offsets in [0,½)
// with a sign per axis chosen so the four base samples (s=0..3) cover the
// four subpixel quadrants, matching (+,+), (−,−), (+,−), (−,+).
func (c *Camera) SampleRay(i, j, s int) geometry.Ray {
	quadrant := s % 4
	iSign := -1.0
	if quadrant == 0 || quadrant == 2 {
		iSign = 1.0
	}
	jSign := -1.0
	if quadrant == 0 || quadrant == 3 {
		jSign = 1.0
	}

	iOffset := c.sampler.Range(0, 0.5) * iSign
	jOffset := c.sampler.Range(0, 0.5) * jSign

	sampleCenter := c.pixel00.
		Add(c.deltaU.Scale(float64(i) + iOffset)).
		Add(c.deltaV.Scale(float64(j) + jOffset))

	return geometry.NewRay(c.center, sampleCenter.Sub(c.center))
}

// Sampler returns the RNG passed in Config. When the same sampler is also
// handed to the materials, one seeded stream drives both pixel jitter and
// scattering.
func (c *Camera) Sampler() *geometry.Sampler {
	return c.sampler
}
