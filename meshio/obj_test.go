package meshio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadTriangle(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")

	mesh, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.NumTriangles() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.NumTriangles())
	}
	want := []int{0, 1, 2}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Errorf("index %d: got %d want %d", i, mesh.Indices[i], w)
		}
	}
}

func TestLoadQuadSplitsIntoTwoTriangles(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")

	mesh, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.NumTriangles() != 2 {
		t.Fatalf("expected 2 triangles from one quad, got %d", mesh.NumTriangles())
	}
	want := []int{0, 1, 2, 0, 2, 3}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Errorf("index %d: got %d want %d", i, mesh.Indices[i], w)
		}
	}
}

func TestLoadFaceWithSlashSeparatedAttributes(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2/2/1 3/3/1\n")

	mesh, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.NumTriangles() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.NumTriangles())
	}
}

func TestLoadRejectsPentagonFace(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv 0.5 1.5 0\nf 1 2 3 4 5\n")

	if _, err := Load(path, LoadOptions{}); err == nil {
		t.Errorf("expected an error for a 5-vertex face")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj"), LoadOptions{}); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadCenterTranslatesToMean(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nv 2 0 0\nv 1 2 0\nf 1 2 3\n")

	mesh, err := Load(path, LoadOptions{Center: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sumX, sumY, sumZ := 0.0, 0.0, 0.0
	for _, v := range mesh.Vertices {
		sumX += v.X()
		sumY += v.Y()
		sumZ += v.Z()
	}
	n := float64(len(mesh.Vertices))
	if math.Abs(sumX/n) > 1e-9 || math.Abs(sumY/n) > 1e-9 || math.Abs(sumZ/n) > 1e-9 {
		t.Errorf("expected mean of centered vertices to be ~0, got (%v,%v,%v)", sumX/n, sumY/n, sumZ/n)
	}
}
