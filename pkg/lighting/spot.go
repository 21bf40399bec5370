package lighting

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// Spotlight contrast factors.
const (
	spotAmbientScale  = 0.15
	spotDiffuseScale  = 2.0
	spotSpecularScale = 1.5
)

// ConeIntensity returns the spotlight factor for a point angle degrees off
// the light axis: 1 inside cone, ((cone+soft-angle)/soft)² across the soft
// edge, 0 beyond cone+soft.
func ConeIntensity(angle, cone, soft float64) float64 {
	switch {
	case angle > cone+soft:
		return 0
	case angle > cone:
		f := (cone + soft - angle) / soft
		return f * f
	default:
		return 1
	}
}

// Attenuation returns the distance falloff 1 / (1 + 0.02d + 0.005d²).
func Attenuation(d float64) float64 {
	return 1 / (1 + 0.02*d + 0.005*d*d)
}

// AngleFromAxis returns the angle in degrees between the light axis dir
// and the ray from the light to point.
func AngleFromAxis(point math3d.Vec3, spot SpotLight) float64 {
	l := spot.Position.Sub(point).Normalize()
	cos := l.Negate().Dot(spot.Direction.Normalize())
	return math3d.Degrees(math.Acos(math.Max(-1, math.Min(1, cos))))
}

// Spotlight shades a surface point lit by a spotlight. Ambient light is
// dimmed; diffuse and specular are boosted and scaled by the cone and
// distance falloff. The result is clamped to [0, 1].
func Spotlight(point, normal math3d.Vec3, m Material, spot SpotLight, camera math3d.Vec3) RGB {
	t := phongTerms(point, normal, m, spot.PointLight, camera)

	intensity := ConeIntensity(AngleFromAxis(point, spot), spot.Cone, spot.Soft)
	intensity *= Attenuation(spot.Position.Distance(point))

	return t.ambient.Scale(spotAmbientScale).
		Add(t.diffuse.Scale(intensity * spotDiffuseScale)).
		Add(t.specular.Scale(intensity * spotSpecularScale)).
		Clamp()
}
