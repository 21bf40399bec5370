package models

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/wheelcut/pkg/math3d"
)

// LoadGLB loads a binary GLTF (.glb) or .gltf file into a single mesh.
// All triangle primitives of all meshes are merged; other primitive modes
// are skipped. The result is validated before it is returned.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mesh := NewMesh(name, nil, nil)

	for _, m := range doc.Meshes {
		if err := appendMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// appendMesh extracts the triangle geometry of a GLTF mesh into dst.
func appendMesh(doc *gltf.Document, m *gltf.Mesh, dst *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(dst.Vertices)
		dst.Vertices = append(dst.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				dst.Faces = append(dst.Faces, Face{base + indices[i], base + indices[i+1], base + indices[i+2]})
			}
			continue
		}

		// Non-indexed: sequential triangles
		for i := 0; i+2 < len(positions); i += 3 {
			dst.Faces = append(dst.Faces, Face{base + i, base + i + 1, base + i + 2})
		}
	}
	return nil
}

// SaveGLB writes the meshes to path as a binary GLTF, one glTF mesh and
// node per input mesh, with float32 positions and uint32 indices.
// Empty meshes are skipped.
func SaveGLB(path string, meshes ...*Mesh) error {
	doc := gltf.NewDocument()
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Scene"})
		doc.Scene = gltf.Index(0)
	}
	scene := doc.Scenes[0]

	for _, m := range meshes {
		if m == nil || len(m.Faces) == 0 {
			continue
		}

		positions := make([][3]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		indices := make([]uint32, 0, len(m.Faces)*3)
		for _, f := range m.Faces {
			indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
		}

		posAccessor := modeler.WritePosition(doc, positions)
		idxAccessor := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: posAccessor},
				Indices:    gltf.Index(idxAccessor),
				Mode:       gltf.PrimitiveTriangles,
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		scene.Nodes = append(scene.Nodes, len(doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb %s: %w", path, err)
	}
	return nil
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float positions, got %v", accessor.ComponentType)
	}

	buf, start, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		offset := start + i*stride
		if offset+12 > len(buf) {
			return nil, fmt.Errorf("accessor overruns buffer at element %d", i)
		}
		result[i] = math3d.V3(
			float64(readFloat32(buf[offset:])),
			float64(readFloat32(buf[offset+4:])),
			float64(readFloat32(buf[offset+8:])),
		)
	}
	return result, nil
}

// readIndices reads u8/u16/u32 index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	buf, start, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := start + i*stride
		if offset+size > len(buf) {
			return nil, fmt.Errorf("index accessor overruns buffer at element %d", i)
		}
		switch size {
		case 1:
			result[i] = int(buf[offset])
		case 2:
			result[i] = int(uint16(buf[offset]) | uint16(buf[offset+1])<<8)
		case 4:
			result[i] = int(uint32(buf[offset]) |
				uint32(buf[offset+1])<<8 |
				uint32(buf[offset+2])<<16 |
				uint32(buf[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorBytes resolves the embedded buffer behind an accessor and returns
// it with the first element offset and the element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data (external buffers are not supported)")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	return buffer.Data, bufferView.ByteOffset + accessor.ByteOffset, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
