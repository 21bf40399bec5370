package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateX(0.3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := RotateX(0.3).Mul(RotateY(0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkCentroid(b *testing.B) {
	v0, v1, v2 := V3(1, 2, 3), V3(4, 5, 6), V3(-1, 0, 2)

	for b.Loop() {
		_ = Centroid(v0, v1, v2)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	view := Translate(V3(0, 0, -20)).Mul(RotateX(Radians(20)))
	proj := Perspective(Radians(45), 1.333, 0.1, 50.0)

	for b.Loop() {
		_ = proj.Mul(view)
	}
}
