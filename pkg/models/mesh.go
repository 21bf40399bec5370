// Package models provides the indexed triangle mesh shared by the generators,
// the clipper and the renderer.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// ErrFaceIndex is returned by Validate when a face references a vertex
// outside the vertex buffer.
var ErrFaceIndex = errors.New("face index out of range")

// Face is a triangle given as three indices into Mesh.Vertices.
type Face [3]int

// Mesh is a vertex buffer plus a triangular face list. Faces do not own
// vertices; several faces may reference the same index.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (see CalculateBounds)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh over the given buffers and computes its bounds.
// The slices are used as-is, not copied.
func NewMesh(name string, vertices []math3d.Vec3, faces []Face) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
	}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin = math3d.Zero3()
		m.BoundsMax = math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns the three vertex positions of face i in face order.
func (m *Mesh) Triangle(i int) (v0, v1, v2 math3d.Vec3) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// FaceNormals returns one unit normal per face, (v1-v0) × (v2-v0).
// Zero-area faces get a zero normal.
func (m *Mesh) FaceNormals() []math3d.Vec3 {
	normals := make([]math3d.Vec3, len(m.Faces))
	for i := range m.Faces {
		v0, v1, v2 := m.Triangle(i)
		normals[i] = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
	return normals
}

// Transformed returns a copy of the mesh with every vertex transformed as a
// point. Faces are copied; the receiver is not modified.
func (m *Mesh) Transformed(mat math3d.Mat4) *Mesh {
	vertices := make([]math3d.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = mat.MulVec3(v)
	}
	faces := make([]Face, len(m.Faces))
	copy(faces, m.Faces)
	return NewMesh(m.Name, vertices, faces)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Validate checks that every face index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q face %d index %d (have %d vertices): %w", m.Name, i, idx, n, ErrFaceIndex)
			}
		}
	}
	return nil
}
