package lighting

import "github.com/taigrr/wheelcut/pkg/math3d"

// Material holds Phong reflectance coefficients. Coefficients are not
// clamped; Shininess is the specular exponent.
type Material struct {
	Name      string
	Ka        float64 // ambient
	Kd        float64 // diffuse
	Ks        float64 // specular
	Shininess float64
	Color     RGB
}

// PointLight is an omnidirectional light with a separate ambient term.
type PointLight struct {
	Position math3d.Vec3
	Color    RGB
	Ambient  RGB
}

// SpotLight is a point light restricted to a cone around Direction.
// Cone and Soft are in degrees: full intensity inside Cone, quadratic
// falloff across the next Soft degrees, dark beyond.
type SpotLight struct {
	PointLight
	Direction math3d.Vec3
	Cone      float64
	Soft      float64
}

// Default spotlight cone, in degrees.
const (
	DefaultCone = 20.0
	DefaultSoft = 5.0
)

// NewSpotLight returns a spotlight aimed along dir with the default cone.
func NewSpotLight(light PointLight, dir math3d.Vec3) SpotLight {
	return SpotLight{
		PointLight: light,
		Direction:  dir,
		Cone:       DefaultCone,
		Soft:       DefaultSoft,
	}
}
