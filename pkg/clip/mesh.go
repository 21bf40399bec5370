package clip

import (
	"github.com/taigrr/wheelcut/pkg/math3d"
	"github.com/taigrr/wheelcut/pkg/models"
)

// Triangulate fans a convex polygon given by vertex indices into triangles
// (0, i, i+1). Fewer than three indices yield nil.
func Triangulate(indices []int) []models.Face {
	if len(indices) < 3 {
		return nil
	}
	faces := make([]models.Face, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		faces = append(faces, models.Face{indices[0], indices[i], indices[i+1]})
	}
	return faces
}

// ClipMesh clips every face of mesh against plane and returns a new mesh
// with shared vertices. Vertices are merged only when their positions are
// exactly equal, in first-seen order; faces keep the input order. The
// input mesh is not modified.
func ClipMesh(mesh *models.Mesh, plane Plane) *models.Mesh {
	vertexIndex := make(map[math3d.Vec3]int, len(mesh.Vertices))
	vertices := make([]math3d.Vec3, 0, len(mesh.Vertices))
	faces := make([]models.Face, 0, len(mesh.Faces))

	addVertex := func(v math3d.Vec3) int {
		if idx, ok := vertexIndex[v]; ok {
			return idx
		}
		idx := len(vertices)
		vertices = append(vertices, v)
		vertexIndex[v] = idx
		return idx
	}

	var tri [3]math3d.Vec3
	indices := make([]int, 0, 4)
	for _, f := range mesh.Faces {
		tri[0], tri[1], tri[2] = mesh.Vertices[f[0]], mesh.Vertices[f[1]], mesh.Vertices[f[2]]

		clipped := ClipPolygon(tri[:], plane)
		if len(clipped) < 3 {
			continue
		}

		indices = indices[:0]
		for _, v := range clipped {
			indices = append(indices, addVertex(v))
		}
		faces = append(faces, Triangulate(indices)...)
	}

	return models.NewMesh(mesh.Name, vertices, faces)
}
