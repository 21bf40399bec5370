package geometry

import (
	"math"
	"testing"

	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

func TestGeneratorCounts(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *models.Mesh
		vertices  int
		triangles int
	}{
		{"cylinder", Cylinder(2.2, 0.85, 64), 2*64 + 2, 4 * 64},
		{"torus", Torus(2.8, 0.5, 64, 24), 64 * 24, 2 * 64 * 24},
		{"band", TireBand(2.8, 0.5, 0, 0.15, 64), 2 * 64, 2 * 64},
		{"spokes", Spokes(0.9, 2.1, 0.8, 10), 8 * 10, 12 * 10},
		{"bolts", HubBolts(0.5, 0.8, 5), 5 * (2*8 + 2), 5 * 4 * 8},
		{"annulus", Annulus(0.65, 0.77, 0.78, 32), 4 * 32, 8 * 32},
		{"sidewall", SidewallMarks(2.8, 0.5, 12), 4 * 12, 2 * 12},
		{"floor", Floor(15, 15, -3.5), 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.vertices {
				t.Errorf("VertexCount = %d, want %d", got, tt.vertices)
			}
			if got := tt.mesh.TriangleCount(); got != tt.triangles {
				t.Errorf("TriangleCount = %d, want %d", got, tt.triangles)
			}
			if err := tt.mesh.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCylinderBounds(t *testing.T) {
	m := Cylinder(2, 1, 16)
	want := math3d.V3(4, 1, 4)
	if !m.Size().ApproxEqual(want, 1e-12) {
		t.Errorf("Size = %v, want %v", m.Size(), want)
	}
	// Cap normals point out along ±Y.
	normals := m.FaceNormals()
	capTop := normals[4*16-2]
	if math.Abs(math.Abs(capTop.Y)-1) > 1e-12 {
		t.Errorf("cap normal = %v, want ±Y", capTop)
	}
}

func TestTorusOnSurface(t *testing.T) {
	const R, r = 2.8, 0.5
	m := Torus(R, r, 32, 12)
	for i, v := range m.Vertices {
		d := math.Hypot(v.X, v.Z) - R
		if got := math.Hypot(d, v.Y); math.Abs(got-r) > 1e-12 {
			t.Fatalf("vertex %d is %v from the tube axis, want %v", i, got, r)
		}
	}
}

func TestTireBandOnTorus(t *testing.T) {
	const R, r = 2.8, 0.5
	m := TireBand(R, r, 0.1, 0.15, 48)
	for i, v := range m.Vertices {
		d := math.Hypot(v.X, v.Z) - R
		if got := math.Hypot(d, v.Y); math.Abs(got-r) > 1e-12 {
			t.Fatalf("vertex %d off the tyre surface: %v", i, got)
		}
		if math.Abs(v.Y-0.1) > 0.08 {
			t.Fatalf("vertex %d outside the band: y=%v", i, v.Y)
		}
	}
}

func TestAnnulusRadii(t *testing.T) {
	m := Annulus(2.2, 2.8, 0.85, 64)
	for i, v := range m.Vertices {
		rad := math.Hypot(v.X, v.Z)
		if math.Abs(rad-2.2) > 1e-12 && math.Abs(rad-2.8) > 1e-12 {
			t.Fatalf("vertex %d at radius %v", i, rad)
		}
		if math.Abs(math.Abs(v.Y)-0.425) > 1e-12 {
			t.Fatalf("vertex %d at height %v", i, v.Y)
		}
	}
}

func TestSpokesSpan(t *testing.T) {
	m := Spokes(0.9, 2.1, 0.8, 10)
	for i, v := range m.Vertices {
		rad := math.Hypot(v.X, v.Z)
		if rad < 0.9-1e-9 || rad > 2.1+0.1 {
			t.Fatalf("vertex %d at radius %v", i, rad)
		}
	}
	if math.Abs(m.Size().Y-0.8) > 1e-12 {
		t.Errorf("spoke height = %v, want 0.8", m.Size().Y)
	}
}

func TestHubBoltsPlacement(t *testing.T) {
	m := HubBolts(0.5, 0.8, 5)
	perBolt := 2*boltSegments + 2
	for i := range 5 {
		top := m.Vertices[i*perBolt+2*boltSegments]
		if math.Abs(math.Hypot(top.X, top.Z)-0.5) > 1e-12 || top.Y != 0.4 {
			t.Errorf("bolt %d centre = %v", i, top)
		}
	}
}

func TestFloor(t *testing.T) {
	m := Floor(10, 6, -3.5)
	if m.BoundsMin != math3d.V3(-5, -3.5, -3) || m.BoundsMax != math3d.V3(5, -3.5, 3) {
		t.Errorf("bounds = %v..%v", m.BoundsMin, m.BoundsMax)
	}
	for _, n := range m.FaceNormals() {
		if math.Abs(math.Abs(n.Y)-1) > 1e-12 {
			t.Errorf("floor normal = %v", n)
		}
	}
}

func TestSidewallMarksLifted(t *testing.T) {
	const R, r = 2.8, 0.5
	m := SidewallMarks(R, r, 12)
	for i, v := range m.Vertices {
		if math.Hypot(v.X, v.Z) < R {
			t.Fatalf("mark vertex %d inside the major radius: %v", i, v)
		}
		if v.Y <= 0 {
			t.Fatalf("mark vertex %d on the wrong side: %v", i, v)
		}
	}
}

func BenchmarkTorus(b *testing.B) {
	for b.Loop() {
		Torus(2.8, 0.5, 64, 24)
	}
}
