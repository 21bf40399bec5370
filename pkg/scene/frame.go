package scene

import (
	"github.com/taigrr/wheelcut/pkg/clip"
	"github.com/taigrr/wheelcut/pkg/lighting"
	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

// Fixed light rig placement.
var (
	SceneLightPos = math3d.V3(10, 10, 10)
	PhongAmbient  = lighting.Gray(0.4)
	SpotAmbient   = lighting.Gray(0.2)
)

// Cut-plane overlay look.
const (
	PlaneHalfSize = 5.0
	PlaneAlpha    = 0.3
)

// Drawable is one mesh ready for the rasterizer.
type Drawable struct {
	Part   Part
	Model  *models.Mesh   // clipped, in model space
	World  *models.Mesh   // Model transformed to world space
	Colors []lighting.RGB // one flat colour per face; nil when not solid
	Wire   lighting.RGB
}

// PlaneOverlay is the translucent quad marking the cut plane.
type PlaneOverlay struct {
	Corners [4]math3d.Vec3 // world space
	Color   lighting.RGB
	Alpha   float64
}

// FrameResult is everything needed to draw one frame.
type FrameResult struct {
	Drawables  []Drawable
	Plane      *PlaneOverlay // nil when hidden
	Background lighting.RGB
	Camera     math3d.Vec3
	Rig        lighting.Rig
	FacesIn    int // pristine wheel faces considered
	FacesOut   int // wheel faces after clipping
}

// OrbitMatrix is the view rotation applied to the whole scene.
func OrbitMatrix(s State) math3d.Mat4 {
	return math3d.RotateX(math3d.Radians(s.Pitch)).Mul(math3d.RotateY(math3d.Radians(s.Yaw)))
}

// SpinMatrix is the wheel rotation about its axle.
func SpinMatrix(s State) math3d.Mat4 {
	return math3d.RotateZ(math3d.Radians(s.SpinAngle))
}

// CameraPosition is where the eye sits in world space.
func CameraPosition(s State) math3d.Vec3 {
	return math3d.V3(0, 0, s.Distance)
}

// LightRig builds the lights for a frame. The normal light and the free
// flashlight sit at SceneLightPos; the fixed flashlight sits at the camera.
// Both flashlights aim at the origin, the free one turned by the user's aim.
func LightRig(s State, p *Palette) lighting.Rig {
	camera := CameraPosition(s)
	color := p.LightColor(s.LightColor)

	rig := lighting.Rig{
		Mode:   s.LightMode,
		Camera: camera,
		Light: lighting.PointLight{
			Position: SceneLightPos,
			Color:    color,
			Ambient:  PhongAmbient,
		},
	}

	var pos, dir math3d.Vec3
	switch s.LightMode {
	case lighting.ModeFlashlight:
		pos = camera
		dir = camera.Negate().Normalize()
	default:
		pos = SceneLightPos
		aim := math3d.RotateY(math3d.Radians(s.AimYaw)).Mul(math3d.RotateX(math3d.Radians(s.AimPitch)))
		dir = aim.MulVec3Dir(SceneLightPos.Negate().Normalize())
	}

	rig.Spot = lighting.NewSpotLight(lighting.PointLight{
		Position: pos,
		Color:    color,
		Ambient:  SpotAmbient,
	}, dir)
	rig.Spot.Cone = s.Cone
	rig.Spot.Soft = s.Soft
	return rig
}

// Frame clips, transforms and shades the assembly for one snapshot. The
// assembly is only read; the floor is never clipped.
func Frame(asm *Assembly, p *Palette, s State) FrameResult {
	orbit := OrbitMatrix(s)
	wheel := orbit.Mul(SpinMatrix(s))
	rig := LightRig(s, p)

	res := FrameResult{
		Drawables:  make([]Drawable, 0, len(asm.Components)+1),
		Background: p.Theme(s.Theme).Background,
		Camera:     rig.Camera,
		Rig:        rig,
	}

	if s.ShowFloor && asm.Floor != nil {
		res.Drawables = append(res.Drawables, buildDrawable(PartFloor, asm.Floor, orbit, p, s, rig))
	}

	var plane clip.Plane
	if s.Clipping {
		plane = clip.PlaneZ(s.CutOffset)
	}

	for _, c := range asm.Components {
		res.FacesIn += c.Mesh.TriangleCount()

		model := c.Mesh
		if s.Clipping {
			model = clip.ClipMesh(c.Mesh, plane)
		}
		res.FacesOut += model.TriangleCount()
		if model.TriangleCount() == 0 {
			continue
		}
		res.Drawables = append(res.Drawables, buildDrawable(c.Part, model, wheel, p, s, rig))
	}

	if s.Clipping && s.ShowPlane {
		z := s.CutOffset
		res.Plane = &PlaneOverlay{
			Corners: [4]math3d.Vec3{
				orbit.MulVec3(math3d.V3(-PlaneHalfSize, -PlaneHalfSize, z)),
				orbit.MulVec3(math3d.V3(PlaneHalfSize, -PlaneHalfSize, z)),
				orbit.MulVec3(math3d.V3(PlaneHalfSize, PlaneHalfSize, z)),
				orbit.MulVec3(math3d.V3(-PlaneHalfSize, PlaneHalfSize, z)),
			},
			Color: p.PlaneColor(),
			Alpha: PlaneAlpha,
		}
	}

	return res
}

func buildDrawable(part Part, model *models.Mesh, toWorld math3d.Mat4, p *Palette, s State, rig lighting.Rig) Drawable {
	world := model.Transformed(toWorld)
	d := Drawable{
		Part:  part,
		Model: model,
		World: world,
		Wire:  p.Wire(part, s.RenderMode),
	}
	if !s.RenderMode.Solid() {
		return d
	}

	mat := p.Material(part, s.Compound, s.Theme)
	normals := world.FaceNormals()
	d.Colors = make([]lighting.RGB, len(world.Faces))
	for i := range world.Faces {
		v0, v1, v2 := world.Triangle(i)
		d.Colors[i] = rig.Shade(math3d.Centroid(v0, v1, v2), normals[i], mat)
	}
	return d
}
