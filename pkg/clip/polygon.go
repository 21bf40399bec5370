package clip

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// parallelEpsilon is the smallest |N·(p2-p1)| treated as crossing the plane.
const parallelEpsilon = 1e-10

// Polygon is an ordered, implicitly closed list of vertices.
type Polygon []math3d.Vec3

// Intersect returns the point where segment p1→p2 crosses the plane.
// It reports false when the segment is parallel to the plane or the
// crossing lies outside the segment.
func Intersect(p1, p2 math3d.Vec3, plane Plane) (math3d.Vec3, bool) {
	dir := p2.Sub(p1)

	denom := plane.A*dir.X + plane.B*dir.Y + plane.C*dir.Z
	if math.Abs(denom) < parallelEpsilon {
		return math3d.Vec3{}, false
	}

	t := -plane.Distance(p1) / denom
	if t < 0 || t > 1 {
		return math3d.Vec3{}, false
	}

	return p1.Add(dir.Scale(t)), true
}

// ClipPolygon clips poly against plane and returns the part on the kept
// side, preserving winding. Polygons with fewer than three vertices clip
// to nil, as does a polygon entirely outside.
func ClipPolygon(poly Polygon, plane Plane) Polygon {
	n := len(poly)
	if n < 3 {
		return nil
	}

	out := make(Polygon, 0, n+1)
	for i := range n {
		cur := poly[i]
		next := poly[(i+1)%n]

		curIn := plane.IsInside(cur)
		nextIn := plane.IsInside(next)

		switch {
		case curIn && nextIn:
			out = append(out, next)
		case curIn && !nextIn:
			if p, ok := Intersect(cur, next, plane); ok {
				out = append(out, p)
			}
		case !curIn && nextIn:
			if p, ok := Intersect(cur, next, plane); ok {
				out = append(out, p)
			}
			out = append(out, next)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
