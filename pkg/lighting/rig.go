package lighting

import "github.com/taigrr/wheelcut/pkg/math3d"

// Rig is the complete light setup for one frame.
type Rig struct {
	Mode   Mode
	Light  PointLight // used by ModeNormal
	Spot   SpotLight  // used by the flashlight modes
	Camera math3d.Vec3
}

// Shade returns the flat colour for a face with the given centroid and
// normal, using the model selected by Mode.
func (r Rig) Shade(point, normal math3d.Vec3, m Material) RGB {
	if r.Mode.IsSpot() {
		return Spotlight(point, normal, m, r.Spot, r.Camera)
	}
	return Phong(point, normal, m, r.Light, r.Camera)
}
