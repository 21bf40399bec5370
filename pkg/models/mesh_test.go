package models

import (
	"math"
	"testing"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

func unitTriangle() *Mesh {
	return NewMesh("tri",
		[]math3d.Vec3{
			math3d.V3(0, 0, 0),
			math3d.V3(1, 0, 0),
			math3d.V3(0, 1, 0),
		},
		[]Face{{0, 1, 2}},
	)
}

func TestMeshBounds(t *testing.T) {
	m := NewMesh("box",
		[]math3d.Vec3{
			math3d.V3(-1, 2, 0),
			math3d.V3(3, -2, 1),
			math3d.V3(0, 0, -5),
		},
		[]Face{{0, 1, 2}},
	)

	if m.BoundsMin != math3d.V3(-1, -2, -5) {
		t.Errorf("BoundsMin = %v", m.BoundsMin)
	}
	if m.BoundsMax != math3d.V3(3, 2, 1) {
		t.Errorf("BoundsMax = %v", m.BoundsMax)
	}
	if c := m.Center(); c != math3d.V3(1, 0, -2) {
		t.Errorf("Center = %v", c)
	}
	if s := m.Size(); s != math3d.V3(4, 4, 6) {
		t.Errorf("Size = %v", s)
	}

	empty := NewMesh("empty", nil, nil)
	if empty.BoundsMin != math3d.Zero3() || empty.BoundsMax != math3d.Zero3() {
		t.Error("empty mesh should have zero bounds")
	}
}

func TestFaceNormals(t *testing.T) {
	tests := []struct {
		name string
		face Face
		want math3d.Vec3
	}{
		{"counterclockwise", Face{0, 1, 2}, math3d.V3(0, 0, 1)},
		{"clockwise", Face{0, 2, 1}, math3d.V3(0, 0, -1)},
		{"degenerate", Face{0, 0, 1}, math3d.Zero3()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := unitTriangle()
			m.Faces[0] = tt.face
			got := m.FaceNormals()[0]
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("normal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformedLeavesReceiver(t *testing.T) {
	m := unitTriangle()
	moved := m.Transformed(math3d.Translate(math3d.V3(0, 0, 5)))

	if m.Vertices[1] != math3d.V3(1, 0, 0) {
		t.Errorf("receiver mutated: %v", m.Vertices[1])
	}
	if moved.Vertices[1] != math3d.V3(1, 0, 5) {
		t.Errorf("moved vertex = %v", moved.Vertices[1])
	}
	if moved.BoundsMin.Z != 5 || moved.BoundsMax.Z != 5 {
		t.Errorf("bounds not recomputed: %v %v", moved.BoundsMin, moved.BoundsMax)
	}

	moved.Faces[0][0] = 2
	if m.Faces[0][0] != 0 {
		t.Error("Transformed shares the face slice with the receiver")
	}
}

func TestTransformedRotation(t *testing.T) {
	m := unitTriangle()
	rot := m.Transformed(math3d.RotateZ(math.Pi / 2))
	if !rot.Vertices[1].ApproxEqual(math3d.V3(0, 1, 0), 1e-12) {
		t.Errorf("rotated vertex = %v", rot.Vertices[1])
	}
}

func TestClone(t *testing.T) {
	m := unitTriangle()
	c := m.Clone()
	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Faces[0] = Face{2, 1, 0}

	if m.Vertices[0] != math3d.Zero3() {
		t.Error("Clone shares vertices")
	}
	if m.Faces[0] != (Face{0, 1, 2}) {
		t.Error("Clone shares faces")
	}
	if c.Name != m.Name || c.BoundsMax != m.BoundsMax {
		t.Error("Clone lost metadata")
	}
}
