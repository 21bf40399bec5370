package lighting

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
)

// terms holds the unscaled Phong contributions before they are summed.
type terms struct {
	ambient  RGB
	diffuse  RGB
	specular RGB
}

// phongTerms evaluates the three Phong terms at point. Zero-length
// direction vectors are used unnormalized.
func phongTerms(point, normal math3d.Vec3, m Material, light PointLight, camera math3d.Vec3) terms {
	n := normal.Normalize()
	l := light.Position.Sub(point).Normalize()
	v := camera.Sub(point).Normalize()

	ambient := light.Ambient.Mul(m.Color).Scale(m.Ka)

	nl := math.Max(0, n.Dot(l))
	diffuse := light.Color.Mul(m.Color).Scale(m.Kd * nl)

	r := n.Scale(2 * nl).Sub(l).Normalize()
	rv := math.Max(0, r.Dot(v))
	specular := light.Color.Scale(m.Ks * math.Pow(rv, m.Shininess))

	return terms{
		ambient:  ambient,
		diffuse:  diffuse,
		specular: specular,
	}
}

// Phong shades a surface point lit by a point light and seen from camera.
// The result is clamped to [0, 1]. Specular highlights take the light
// colour, not the material colour.
func Phong(point, normal math3d.Vec3, m Material, light PointLight, camera math3d.Vec3) RGB {
	t := phongTerms(point, normal, m, light, camera)
	return t.ambient.Add(t.diffuse).Add(t.specular).Clamp()
}
