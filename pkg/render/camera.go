package render

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// Default projection parameters.
const (
	DefaultFOV  = math.Pi / 4 // 45 degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Camera sits on the +Z axis at Distance and looks at the origin. The scene
// is orbited in world space, so the camera itself never rotates.
type Camera struct {
	Distance float64

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64
	Far         float64

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	vpDirty        bool
}

// NewCamera creates a camera at the given distance with default projection.
func NewCamera(distance float64) *Camera {
	return &Camera{
		Distance:    distance,
		FOV:         DefaultFOV,
		AspectRatio: 1,
		Near:        DefaultNear,
		Far:         DefaultFar,
		viewDirty:   true,
		projDirty:   true,
		vpDirty:     true,
	}
}

// Position returns the eye position in world space.
func (c *Camera) Position() math3d.Vec3 {
	return math3d.V3(0, 0, c.Distance)
}

// SetDistance moves the camera along the Z axis.
func (c *Camera) SetDistance(d float64) {
	if d == c.Distance {
		return
	}
	c.Distance = d
	c.viewDirty = true
	c.vpDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
	c.vpDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
	c.vpDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
	c.vpDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.Translate(c.Position().Negate())
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.vpDirty {
		c.viewProjMatrix = c.ProjectionMatrix().Mul(c.ViewMatrix())
		c.vpDirty = false
	}
	return c.viewProjMatrix
}

// Project transforms a world point to screen coordinates with y down and
// NDC depth. ok is false for points at or behind the eye plane.
func (c *Camera) Project(world math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float64, ok bool) {
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(world, 1))
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clipPos.PerspectiveDivide()
	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight)
	return x, y, ndc.Z, true
}
