// Package geometry generates the parametric meshes that make up the wheel
// and the floor. Every generator builds around the +Y axis; callers rotate
// the result into place.
package geometry

import (
	"math"

	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

// builder accumulates vertices and faces for one mesh.
type builder struct {
	vertices []math3d.Vec3
	faces    []models.Face
}

func newBuilder(vertexCap, faceCap int) *builder {
	return &builder{
		vertices: make([]math3d.Vec3, 0, vertexCap),
		faces:    make([]models.Face, 0, faceCap),
	}
}

// vertex appends v and returns its index.
func (b *builder) vertex(x, y, z float64) int {
	b.vertices = append(b.vertices, math3d.V3(x, y, z))
	return len(b.vertices) - 1
}

func (b *builder) tri(i, j, k int) {
	b.faces = append(b.faces, models.Face{i, j, k})
}

func (b *builder) mesh(name string) *models.Mesh {
	return models.NewMesh(name, b.vertices, b.faces)
}

// ring returns the angle of step i of n around a full turn.
func ring(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}
