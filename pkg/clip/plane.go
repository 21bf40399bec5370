// Package clip slices triangle meshes against a single plane with the
// Sutherland-Hodgman algorithm.
package clip

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// Plane is the oriented plane Ax + By + Cz + D = 0. Points with a
// non-negative signed distance are on the kept side.
type Plane struct {
	A, B, C, D float64
}

// NewPlane creates a plane from its coefficients, normalized so (A,B,C) has
// unit length. A zero normal is stored as given.
func NewPlane(a, b, c, d float64) Plane {
	l := math.Sqrt(a*a + b*b + c*c)
	if l == 0 {
		return Plane{a, b, c, d}
	}
	return Plane{a / l, b / l, c / l, d / l}
}

// PlaneZ returns the cutting plane z = offset, keeping z >= offset.
func PlaneZ(offset float64) Plane {
	return NewPlane(0, 0, 1, -offset)
}

// Distance returns the signed distance from p to the plane.
func (p Plane) Distance(v math3d.Vec3) float64 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// IsInside reports whether v lies on the kept side. Points on the plane are inside.
func (p Plane) IsInside(v math3d.Vec3) bool {
	return p.Distance(v) >= 0
}

// Normal returns (A, B, C).
func (p Plane) Normal() math3d.Vec3 {
	return math3d.V3(p.A, p.B, p.C)
}

// Offset returns D.
func (p Plane) Offset() float64 {
	return p.D
}
