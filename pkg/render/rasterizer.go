package render

import (
	"image/color"
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

// DefaultWireBias lets wires drawn over solid faces win the depth test
// against the faces they outline.
const DefaultWireBias = 1e-4

// Rasterizer draws flat-shaded triangles, lines and translucent quads into
// a framebuffer with a z-buffer.
type Rasterizer struct {
	camera  *Camera
	fb      *Framebuffer
	zbuffer []float64 // Depth buffer (1D array, row-major)

	// Back faces are drawn by default so cut-open meshes show their inside.
	DisableBackfaceCulling bool
	WireBias               float64
	Stats                  Stats
}

// Stats counts triangles per frame.
type Stats struct {
	Triangles int // submitted
	Culled    int // back-facing, degenerate or behind the eye
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{
		camera:                 camera,
		fb:                     fb,
		DisableBackfaceCulling: true,
		WireBias:               DefaultWireBias,
	}
	r.Resize()
	return r
}

// Resize resizes the rasterizer's buffer to match the framebuffer.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.zbuffer = nil
		return
	}
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// ClearDepth clears the Z-buffer and the stats (call before each frame).
func (r *Rasterizer) ClearDepth() {
	r.Stats = Stats{}
	// Use copy-doubling for faster clearing
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

// depthAt returns the depth at (x, y).
func (r *Rasterizer) depthAt(x, y int) float64 {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return math.MaxFloat64
	}
	return r.zbuffer[y*r.Width()+x]
}

// screenVertex holds a vertex transformed to screen space.
type screenVertex struct {
	X, Y float64 // Screen coordinates
	Z    float64 // Depth (for Z-buffer)
}

func (r *Rasterizer) project(v math3d.Vec3) (screenVertex, bool) {
	x, y, z, ok := r.camera.Project(v, r.Width(), r.Height())
	return screenVertex{x, y, z}, ok
}

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C.
// Positive = left of edge, negative = right of edge, zero = on edge.
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1 // dy
	B = x1 - x0 // -dx
	C = x0*y1 - x1*y0
	return
}

// edgeFunc evaluates edge function at point (x, y)
func edgeFunc(A, B, C, x, y float64) float64 {
	return A*x + B*y + C
}

// fillTriangle walks the covered pixels of a screen-space triangle with
// incremental edge functions and calls plot with the pixel index and the
// interpolated depth. It reports false when nothing was rasterized.
func (r *Rasterizer) fillTriangle(s0, s1, s2 screenVertex, allowBack bool, plot func(idx int, z float64)) bool {
	// Screen y points down, so counter-clockwise faces have a negative cross.
	cross := (s1.X-s0.X)*(s2.Y-s0.Y) - (s1.Y-s0.Y)*(s2.X-s0.X)
	if cross == 0 || (cross > 0 && !allowBack) {
		return false
	}
	if cross < 0 {
		s1, s2 = s2, s1
		cross = -cross
	}

	// Bounding box (clamped to screen)
	minX := int(math.Max(0, math.Floor(min(s0.X, s1.X, s2.X))))
	maxX := int(math.Min(float64(r.Width()-1), math.Ceil(max(s0.X, s1.X, s2.X))))
	minY := int(math.Max(0, math.Floor(min(s0.Y, s1.Y, s2.Y))))
	maxY := int(math.Min(float64(r.Height()-1), math.Ceil(max(s0.Y, s1.Y, s2.Y))))
	if minX > maxX || minY > maxY {
		return false
	}

	// Edge 0: v1 -> v2, Edge 1: v2 -> v0, Edge 2: v0 -> v1
	A0, B0, C0 := edgeCoeffs(s1.X, s1.Y, s2.X, s2.Y)
	A1, B1, C1 := edgeCoeffs(s2.X, s2.Y, s0.X, s0.Y)
	A2, B2, C2 := edgeCoeffs(s0.X, s0.Y, s1.X, s1.Y)

	invArea := 1.0 / cross

	px := float64(minX) + 0.5
	py := float64(minY) + 0.5
	w0Row := edgeFunc(A0, B0, C0, px, py)
	w1Row := edgeFunc(A1, B1, C1, px, py)
	w2Row := edgeFunc(A2, B2, C2, px, py)

	width := r.Width()
	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		rowOffset := y * width

		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				z := (w0*s0.Z + w1*s1.Z + w2*s2.Z) * invArea
				plot(rowOffset+x, z)
			}
			w0 += A0
			w1 += A1
			w2 += A2
		}

		w0Row += B0
		w1Row += B1
		w2Row += B2
	}
	return true
}

// DrawTriangleFlat draws a world-space triangle in a single colour.
func (r *Rasterizer) DrawTriangleFlat(v0, v1, v2 math3d.Vec3, c color.RGBA) {
	r.Stats.Triangles++

	s0, ok0 := r.project(v0)
	s1, ok1 := r.project(v1)
	s2, ok2 := r.project(v2)
	if !ok0 || !ok1 || !ok2 {
		r.Stats.Culled++
		return
	}

	zbuffer := r.zbuffer
	pixels := r.fb.Pixels
	drawn := r.fillTriangle(s0, s1, s2, r.DisableBackfaceCulling, func(idx int, z float64) {
		if z < zbuffer[idx] {
			zbuffer[idx] = z
			pixels[idx] = c
		}
	})
	if !drawn {
		r.Stats.Culled++
	}
}

// DrawMeshFlat draws every face of a world-space mesh with its own colour.
// Faces without a colour are drawn white.
func (r *Rasterizer) DrawMeshFlat(mesh *models.Mesh, colors []color.RGBA) {
	white := color.RGBA{255, 255, 255, 255}
	for i := range mesh.Faces {
		c := white
		if i < len(colors) {
			c = colors[i]
		}
		v0, v1, v2 := mesh.Triangle(i)
		r.DrawTriangleFlat(v0, v1, v2, c)
	}
}

// DrawLine3D draws a world-space line. With depthTest set, pixels hidden
// behind already drawn faces (less WireBias) are skipped. Lines never write
// depth.
func (r *Rasterizer) DrawLine3D(p1, p2 math3d.Vec3, c color.RGBA, depthTest bool) {
	s1, ok1 := r.project(p1)
	s2, ok2 := r.project(p2)
	if !ok1 || !ok2 {
		return
	}

	x1, y1 := int(math.Floor(s1.X)), int(math.Floor(s1.Y))
	x2, y2 := int(math.Floor(s2.X)), int(math.Floor(s2.Y))
	bresenham(x1, y1, x2, y2, func(x, y int, t float64) {
		if depthTest {
			z := s1.Z + (s2.Z-s1.Z)*t
			if z-r.WireBias > r.depthAt(x, y) {
				return
			}
		}
		r.fb.SetPixel(x, y, c)
	})
}

// DrawMeshWireframe draws the edges of every face of a world-space mesh.
func (r *Rasterizer) DrawMeshWireframe(mesh *models.Mesh, c color.RGBA, depthTest bool) {
	for i := range mesh.Faces {
		v0, v1, v2 := mesh.Triangle(i)
		r.DrawLine3D(v0, v1, c, depthTest)
		r.DrawLine3D(v1, v2, c, depthTest)
		r.DrawLine3D(v2, v0, c, depthTest)
	}
}

// DrawPlaneOverlay blends a translucent world-space quad over the frame. It is
// depth tested against the drawn faces but does not write depth.
func (r *Rasterizer) DrawPlaneOverlay(corners [4]math3d.Vec3, c color.RGBA, alpha float64) {
	var s [4]screenVertex
	for i, p := range corners {
		var ok bool
		if s[i], ok = r.project(p); !ok {
			return
		}
	}

	zbuffer := r.zbuffer
	width := r.Width()
	blend := func(idx int, z float64) {
		if z < zbuffer[idx] {
			r.fb.BlendPixel(idx%width, idx/width, c, alpha)
		}
	}
	r.fillTriangle(s[0], s[1], s[2], true, blend)
	r.fillTriangle(s[0], s[2], s[3], true, blend)
}
