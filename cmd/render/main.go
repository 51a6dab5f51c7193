// Command render assembles the renderer's demo scene and writes a P3 image
// to standard output, with scanline progress on standard error. It takes no
// flags, environment variables, or persisted state.
package main

import (
	"fmt"
	"math"
	"os"

	"render-engine/camera"
	"render-engine/geometry"
	"render-engine/imageio"
	"render-engine/material"
	"render-engine/scene"
	"render-engine/shapes"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(stdout, stderr *os.File) error {
	sampler := geometry.NewSampler(1)

	world := buildScene(sampler)
	world.Build()

	cam, err := camera.NewCamera(camera.Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		VerticalFOV:     30,
		Center:          geometry.NewPoint(1.33, 2, 9),
		LookAt:          geometry.NewPoint(1.33, 0, 0),
		FocusDist:       9.3,
		SamplesPerPixel: 50,
		MaxBounces:      20,
		Sampler:         sampler,
	})
	if err != nil {
		return fmt.Errorf("configure camera: %w", err)
	}

	return renderTo(stdout, stderr, cam, world)
}

// renderTo runs the camera over every pixel, reporting remaining scanlines
// to stderr exactly as the original camera::render loop does, then writes
// the accumulated linear pixel buffer as a P3 image to stdout.
func renderTo(stdout, stderr *os.File, cam *camera.Camera, world *scene.Scene) error {
	pixels := make([]geometry.Vector, 0, cam.ImageWidth*cam.ImageHeight)

	for j := 0; j < cam.ImageHeight; j++ {
		fmt.Fprintf(stderr, "\rScanlines remaining: %d ", cam.ImageHeight-j)
		for i := 0; i < cam.ImageWidth; i++ {
			pixels = append(pixels, cam.RenderPixel(world, i, j))
		}
	}
	fmt.Fprintf(stderr, "\rDone.                 \n")

	return imageio.WritePPM(stdout, cam.ImageWidth, cam.ImageHeight, pixels)
}

// buildScene assembles a three-sphere configuration — spheres at (5,0,0),
// (0,0,0) and (−1,0,0), radii 1, 0.4, 0.4 — given one material variant each
// (dielectric, lambertian, specular) so the demo exercises every BXDF, plus a
// large ground sphere beneath them and a tilted tile mesh.
func buildScene(sampler *geometry.Sampler) *scene.Scene {
	s := scene.NewScene()

	ground := material.NewLambertianTexture(
		material.NewCheckerTexture(0.8,
			geometry.NewDirection(0.2, 0.3, 0.1),
			geometry.NewDirection(0.9, 0.9, 0.9),
		),
		sampler,
	)
	s.Add(shapes.NewSphere(geometry.NewPoint(0, -1000.5, -1), 1000, ground))

	glass := material.NewDielectric(geometry.NewDirection(1, 1, 1), 1.5)
	s.Add(shapes.NewSphere(geometry.NewPoint(5, 0, 0), 1, glass))

	diffuse := material.NewLambertian(geometry.NewDirection(0.6, 0.2, 0.2), sampler)
	s.Add(shapes.NewSphere(geometry.NewPoint(0, 0, 0), 0.4, diffuse))

	metal := material.NewSpecular(geometry.NewDirection(0.8, 0.8, 0.9))
	s.Add(shapes.NewSphere(geometry.NewPoint(-1, 0, 0), 0.4, metal))

	s.AddMesh(tiltedTile(sampler))

	return s
}

// tiltedTile builds a single unit-square mesh and places it in the scene by
// composing a rotation, a scale and a translation the way chess.h builds one
// piece mesh and instances it around the board via apply_total_transform.
func tiltedTile(sampler *geometry.Sampler) *shapes.Mesh {
	tileMat := material.NewLambertian(geometry.NewDirection(0.3, 0.5, 0.7), sampler)
	tile := shapes.NewMesh(
		[]geometry.Vector{
			geometry.NewPoint(-0.5, -0.5, 0),
			geometry.NewPoint(0.5, -0.5, 0),
			geometry.NewPoint(0.5, 0.5, 0),
			geometry.NewPoint(-0.5, 0.5, 0),
		},
		[]int{0, 1, 2, 0, 2, 3},
		tileMat,
	)

	placement := geometry.Translate(geometry.NewDirection(3, -0.3, 2)).
		Mul(geometry.RotateX(math.Pi / 6)).
		Mul(geometry.Scale(geometry.NewDirection(2, 2, 1)))

	return tile.Transformed(placement)
}
