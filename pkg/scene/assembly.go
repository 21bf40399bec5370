package scene

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/geometry"
	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

// Component is one pristine mesh of the assembly and the part it plays.
type Component struct {
	Part Part
	Mesh *models.Mesh
}

// Assembly is the wheel as generated, never modified by a frame. Every
// frame clips and transforms copies of these meshes.
type Assembly struct {
	Components []Component
	Floor      *models.Mesh
}

// WheelOptions sizes the generated wheel.
type WheelOptions struct {
	TireRadius  float64 // major radius of the tyre torus
	TubeRadius  float64 // tyre cross-section radius
	RimRadius   float64
	Width       float64 // rim thickness along the axle
	Spokes      int
	Bolts       int
	Marks       int
	Segments    int // around the axle
	TubeSegs    int // around the tyre cross-section
	FloorSize   float64
	FloorHeight float64
}

// DefaultWheelOptions returns the standard wheel proportions.
func DefaultWheelOptions() WheelOptions {
	return WheelOptions{
		TireRadius:  2.8,
		TubeRadius:  0.5,
		RimRadius:   2.2,
		Width:       0.85,
		Spokes:      10,
		Bolts:       5,
		Marks:       12,
		Segments:    64,
		TubeSegs:    24,
		FloorSize:   15,
		FloorHeight: -3.5,
	}
}

// BuildWheel generates every wheel part, turned so the axle runs along Z,
// plus the floor. Components are in draw order.
func BuildWheel(opts WheelOptions) *Assembly {
	seg := opts.Segments
	half := seg / 2
	R, r := opts.TireRadius, opts.TubeRadius

	upright := math3d.RotateX(math.Pi / 2)

	parts := []struct {
		part Part
		mesh *models.Mesh
	}{
		{PartTire, geometry.Torus(R, r, seg, opts.TubeSegs)},
		{PartBand, geometry.TireBand(R, r, 0, 0.15, seg)},
		{PartRim, geometry.Cylinder(opts.RimRadius, opts.Width, seg)},
		{PartFiller, geometry.Annulus(opts.RimRadius, R, opts.Width, seg)},
		{PartSidewall, geometry.SidewallMarks(R, r, opts.Marks)},
		{PartSpokes, geometry.Spokes(0.9, opts.RimRadius-0.1, opts.Width-0.05, opts.Spokes)},
		{PartHubRing, geometry.Annulus(0.65, 0.77, opts.Width-0.07, half)},
		{PartHub, geometry.Cylinder(0.8, opts.Width-0.1, half)},
		{PartBolts, geometry.HubBolts(0.5, opts.Width-0.05, opts.Bolts)},
	}

	asm := &Assembly{
		Components: make([]Component, 0, len(parts)),
		Floor:      geometry.Floor(opts.FloorSize, opts.FloorSize, opts.FloorHeight),
	}
	for _, p := range parts {
		m := p.mesh.Transformed(upright)
		m.Name = p.part.String()
		asm.Components = append(asm.Components, Component{Part: p.part, Mesh: m})
	}
	return asm
}

// AddMesh appends an extra component drawn with the imported material.
func (a *Assembly) AddMesh(m *models.Mesh) {
	a.Components = append(a.Components, Component{Part: PartImported, Mesh: m})
}

// TriangleCount returns the total number of pristine wheel triangles,
// excluding the floor.
func (a *Assembly) TriangleCount() int {
	n := 0
	for _, c := range a.Components {
		n += c.Mesh.TriangleCount()
	}
	return n
}
