package geometry

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/models"
)

// Spoke and bolt proportions.
const (
	spokeThickness = 0.08
	spokeInnerGrow = 1.2
	spokeOuterTrim = 0.7
	boltRadius     = 0.12
	boltSegments   = 8
)

// Sidewall mark placement on the tyre tube.
const (
	markPhi    = math.Pi * 0.4
	markWidth  = 0.08
	markHeight = 0.3
	markLift   = 1.02
)

// TireBand returns a thin coloured strip wrapped around a torus of radii
// R and r, centred at height y, width wide along the tube.
func TireBand(R, r, y, width float64, seg int) *models.Mesh {
	phiCentre := math.Asin(y / r)
	half := width / r / 2

	b := newBuilder(2*seg, 2*seg)
	for i := range seg {
		theta := ring(i, seg)
		for _, phi := range []float64{phiCentre + half, phiCentre - half} {
			d := R + r*math.Cos(phi)
			b.vertex(d*math.Cos(theta), r*math.Sin(phi), d*math.Sin(theta))
		}
	}

	for i := range seg {
		a := i * 2
		n := ((i + 1) % seg) * 2
		b.tri(a, a+1, n+1)
		b.tri(a, n+1, n)
	}
	return b.mesh("band")
}

// Spokes returns n tapered box spokes running radially from rIn to rOut,
// h thick. Each spoke is wider at the hub than at the rim.
func Spokes(rIn, rOut, h float64, n int) *models.Mesh {
	b := newBuilder(8*n, 12*n)
	inner := spokeThickness * spokeInnerGrow
	outer := spokeThickness * spokeOuterTrim

	for i := range n {
		a := ring(i, n)
		ca, sa := math.Cos(a), math.Sin(a)
		cp, sp := math.Cos(a+math.Pi/2), math.Sin(a+math.Pi/2)

		base := len(b.vertices)
		for _, y := range []float64{h / 2, -h / 2} {
			b.vertex(rIn*ca+inner*cp, y, rIn*sa+inner*sp)
			b.vertex(rIn*ca-inner*cp, y, rIn*sa-inner*sp)
			b.vertex(rOut*ca-outer*cp, y, rOut*sa-outer*sp)
			b.vertex(rOut*ca+outer*cp, y, rOut*sa+outer*sp)
		}

		for _, f := range spokeFaces {
			b.tri(base+f[0], base+f[1], base+f[2])
		}
	}
	return b.mesh("spokes")
}

// spokeFaces triangulates the eight corners of one spoke: 0-3 top, 4-7 bottom.
var spokeFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3},
	{4, 6, 5}, {4, 7, 6},
	{0, 3, 7}, {0, 7, 4},
	{1, 5, 6}, {1, 6, 2},
	{3, 2, 6}, {3, 6, 7},
	{0, 4, 5}, {0, 5, 1},
}

// HubBolts returns n small capped cylinders evenly spaced on a circle of
// radius r, h tall.
func HubBolts(r, h float64, n int) *models.Mesh {
	b := newBuilder(n*(2*boltSegments+2), n*4*boltSegments)
	for i := range n {
		a := ring(i, n)
		appendCylinder(b, r*math.Cos(a), r*math.Sin(a), boltRadius, h, boltSegments)
	}
	return b.mesh("bolts")
}

// SidewallMarks returns n small raised quads on one side of a torus of
// radii R and r, so rotation is visible.
func SidewallMarks(R, r float64, n int) *models.Mesh {
	b := newBuilder(4*n, 2*n)
	sp, cp := math.Sin(markPhi), math.Cos(markPhi)

	for i := range n {
		theta := ring(i, n)
		st, ct := math.Sin(theta), math.Cos(theta)

		d := R + r*cp
		cx, cy, cz := d*ct, r*sp, d*st

		// tangents along the major circle and along the tube
		tx, tz := -st, ct
		px, py, pz := -sp*ct, cp, -sp*st

		base := len(b.vertices)
		for _, dy := range []float64{-markHeight / 2, markHeight / 2} {
			for _, dt := range []float64{-markWidth / 2, markWidth / 2} {
				x := cx + tx*dt + px*dy
				y := cy + py*dy
				z := cz + tz*dt + pz*dy
				b.vertex(x*markLift, y, z*markLift)
			}
		}
		b.tri(base, base+1, base+2)
		b.tri(base+1, base+3, base+2)
	}
	return b.mesh("sidewall")
}
