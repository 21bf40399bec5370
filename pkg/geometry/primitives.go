package geometry

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/models"
)

// Cylinder returns a capped cylinder of radius r and height h centred on
// the origin, with seg sides.
func Cylinder(r, h float64, seg int) *models.Mesh {
	b := newBuilder(2*seg+2, 4*seg)
	appendCylinder(b, 0, 0, r, h, seg)
	return b.mesh("cylinder")
}

// appendCylinder adds a capped cylinder centred at (cx, 0, cz).
func appendCylinder(b *builder, cx, cz, r, h float64, seg int) {
	base := len(b.vertices)
	for _, y := range []float64{h / 2, -h / 2} {
		for i := range seg {
			a := ring(i, seg)
			b.vertex(cx+r*math.Cos(a), y, cz+r*math.Sin(a))
		}
	}

	for i := range seg {
		top := base + i
		topNext := base + (i+1)%seg
		bottom := top + seg
		bottomNext := topNext + seg
		b.tri(top, bottom, topNext)
		b.tri(topNext, bottom, bottomNext)
	}

	topCentre := b.vertex(cx, h/2, cz)
	bottomCentre := b.vertex(cx, -h/2, cz)
	for i := range seg {
		next := (i + 1) % seg
		b.tri(topCentre, base+i, base+next)
		b.tri(bottomCentre, base+next+seg, base+i+seg)
	}
}

// Torus returns a torus around the Y axis with major radius R and tube
// radius r.
func Torus(R, r float64, segMajor, segMinor int) *models.Mesh {
	b := newBuilder(segMajor*segMinor, 2*segMajor*segMinor)
	for i := range segMajor {
		theta := ring(i, segMajor)
		for j := range segMinor {
			phi := ring(j, segMinor)
			d := R + r*math.Cos(phi)
			b.vertex(d*math.Cos(theta), r*math.Sin(phi), d*math.Sin(theta))
		}
	}

	for i := range segMajor {
		for j := range segMinor {
			next := (i + 1) % segMajor
			p1 := i*segMinor + j
			p2 := i*segMinor + (j+1)%segMinor
			p3 := next*segMinor + (j+1)%segMinor
			p4 := next*segMinor + j
			b.tri(p1, p2, p3)
			b.tri(p1, p3, p4)
		}
	}
	return b.mesh("torus")
}

// Annulus returns a flat ring of thickness h between radii rIn and rOut,
// with top, bottom, outer and inner walls.
func Annulus(rIn, rOut, h float64, seg int) *models.Mesh {
	b := newBuilder(4*seg, 8*seg)
	for i := range seg {
		a := ring(i, seg)
		c, s := math.Cos(a), math.Sin(a)
		b.vertex(rIn*c, h/2, rIn*s)
		b.vertex(rOut*c, h/2, rOut*s)
		b.vertex(rIn*c, -h/2, rIn*s)
		b.vertex(rOut*c, -h/2, rOut*s)
	}

	for i := range seg {
		p := i * 4
		n := ((i + 1) % seg) * 4

		// top
		b.tri(p, p+1, n+1)
		b.tri(p, n+1, n)
		// bottom
		b.tri(p+2, n+2, p+3)
		b.tri(p+3, n+2, n+3)
		// outer wall
		b.tri(p+1, p+3, n+3)
		b.tri(p+1, n+3, n+1)
		// inner wall
		b.tri(p, n, p+2)
		b.tri(p+2, n, n+2)
	}
	return b.mesh("annulus")
}

// Floor returns a w×d quad at height y as two triangles.
func Floor(w, d, y float64) *models.Mesh {
	b := newBuilder(4, 2)
	b.vertex(-w/2, y, -d/2)
	b.vertex(w/2, y, -d/2)
	b.vertex(w/2, y, d/2)
	b.vertex(-w/2, y, d/2)
	b.tri(0, 1, 2)
	b.tri(0, 2, 3)
	return b.mesh("floor")
}
