// Package meshio parses a .obj file's vertex/face data into the flat
// (vertices, indices) arrays the shapes package's Mesh expects. Adapted from
// a line-scanning style, stripped down to the position-only,
// triangle/quad-only subset this renderer needs.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"render-engine/geometry"
)

// Mesh is the parsed result: a flat vertex array and a flat triangle index
// array (3 ints per triangle).
type Mesh struct {
	Vertices []geometry.Vector
	Indices  []int
}

// NumTriangles reports how many triangles Indices describes.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// LoadOptions controls optional post-processing applied after parsing.
type LoadOptions struct {
	// Center translates every vertex so the mesh's mean position is the origin.
	Center bool
}

// Load parses a Wavefront .obj file at path. Only "v" (vertex position) and
// "f" (face) records are honoured; faces must be triangles or quads — a
// quad (0,1,2,3) is split into triangles (0,1,2) and (0,2,3).
// Non-triangular, non-quad faces are rejected.
func Load(path string, opts LoadOptions) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %q: %w", path, err)
	}
	defer f.Close()

	mesh, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("meshio: parse %q: %w", path, err)
	}

	if opts.Center {
		centerMesh(mesh)
	}
	return mesh, nil
}

func parse(f *os.File) (*Mesh, error) {
	mesh := &Mesh{}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, p)

		case "f":
			tris, err := parseFace(fields, len(mesh.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Indices = append(mesh.Indices, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("no mesh data found")
	}
	return mesh, nil
}

func parseVertex(fields []string) (geometry.Vector, error) {
	if len(fields) < 4 {
		return geometry.Vector{}, fmt.Errorf("malformed vertex record %q", strings.Join(fields, " "))
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometry.Vector{}, fmt.Errorf("vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geometry.Vector{}, fmt.Errorf("vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return geometry.Vector{}, fmt.Errorf("vertex z: %w", err)
	}
	return geometry.NewPoint(x, y, z), nil
}

// parseFace reads a triangle or quad face record (only the vertex index
// before any "/" is honoured — normals and UVs in the OBJ face spec are
// ignored, since shapes derive their own UV/normal) and returns the
// zero-based triangle indices it contributes: one triangle (0,1,2) for a
// triangle face, two — (0,1,2) and (0,2,3) — for a quad.
func parseFace(fields []string, numVertices int) ([]int, error) {
	verts := fields[1:]
	if len(verts) != 3 && len(verts) != 4 {
		return nil, fmt.Errorf("unsupported face with %d vertices (only triangles and quads are supported)", len(verts))
	}

	idx := make([]int, len(verts))
	for i, v := range verts {
		spec := strings.SplitN(v, "/", 2)[0]
		n, err := strconv.Atoi(spec)
		if err != nil {
			return nil, fmt.Errorf("face vertex index: %w", err)
		}
		if n < 0 {
			n = numVertices + n + 1
		}
		if n < 1 || n > numVertices {
			return nil, fmt.Errorf("face vertex index %d out of range (have %d vertices)", n, numVertices)
		}
		idx[i] = n - 1
	}

	if len(idx) == 3 {
		return []int{idx[0], idx[1], idx[2]}, nil
	}
	return []int{idx[0], idx[1], idx[2], idx[0], idx[2], idx[3]}, nil
}

func centerMesh(mesh *Mesh) {
	if len(mesh.Vertices) == 0 {
		return
	}
	sum := geometry.NewDirection(0, 0, 0)
	for _, v := range mesh.Vertices {
		sum = sum.Add(geometry.NewDirection(v.X(), v.Y(), v.Z()))
	}
	mean := sum.Scale(1 / float64(len(mesh.Vertices)))
	for i, v := range mesh.Vertices {
		mesh.Vertices[i] = geometry.NewPoint(v.X()-mean.X(), v.Y()-mean.Y(), v.Z()-mean.Z())
	}
}
