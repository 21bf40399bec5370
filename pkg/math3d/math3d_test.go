package math3d

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", V3(0, 0, 5), V3(0, 0, 1)},
		{"diagonal", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"zero stays zero", Zero3(), Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	m := RotateX(Radians(90))

	// +Y maps to +Z and +Z maps to -Y
	if got := m.MulVec3(V3(0, 1, 0)); !got.ApproxEqual(V3(0, 0, 1), 1e-12) {
		t.Errorf("RotateX(90) * +Y = %v, want (0, 0, 1)", got)
	}
	if got := m.MulVec3(V3(0, 0, 1)); !got.ApproxEqual(V3(0, -1, 0), 1e-12) {
		t.Errorf("RotateX(90) * +Z = %v, want (0, -1, 0)", got)
	}
}

func TestTranslateAffectsPointsOnly(t *testing.T) {
	m := Translate(V3(1, 2, 3))

	if got := m.MulVec3(V3(1, 1, 1)); got != V3(2, 3, 4) {
		t.Errorf("point = %v, want (2, 3, 4)", got)
	}
	if got := m.MulVec3Dir(V3(1, 1, 1)); got != V3(1, 1, 1) {
		t.Errorf("direction = %v, want (1, 1, 1)", got)
	}
}

func TestMulComposesRightToLeft(t *testing.T) {
	// Scale first, then translate
	m := Translate(V3(10, 0, 0)).Mul(ScaleUniform(2))

	if got := m.MulVec3(V3(1, 0, 0)); got != V3(12, 0, 0) {
		t.Errorf("got %v, want (12, 0, 0)", got)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(V3(0, 0, 0), V3(3, 0, 0), V3(0, 3, 3))
	if !c.ApproxEqual(V3(1, 1, 1), 1e-12) {
		t.Errorf("Centroid = %v, want (1, 1, 1)", c)
	}
}

func TestDegreesRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 20, 45, 90, 180, -30} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
}
