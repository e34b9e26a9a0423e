package mesh

import (
	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is a triangle mesh ready to be uploaded for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
// Triangles do not share vertices so every face keeps a flat normal.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
}

// Build flattens polygon caches as collected from a cube tree.
func Build(polygons [][]world.Polygon) *Mesh {
	count := 0
	for _, p := range polygons {
		count += len(p)
	}

	m := &Mesh{
		Vertices: make([]float32, 0, count*9),
		Normals:  make([]float32, 0, count*9),
		Indices:  make([]uint32, 0, count*3),
	}
	for _, cache := range polygons {
		for _, triangle := range cache {
			m.add(triangle)
		}
	}
	return m
}

func (m *Mesh) add(triangle world.Polygon) {
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(
		rl.Vector3Subtract(triangle[1], triangle[0]),
		rl.Vector3Subtract(triangle[2], triangle[0]),
	))

	for _, v := range triangle {
		m.Indices = append(m.Indices, uint32(m.VertexCount()))
		m.Vertices = append(m.Vertices, v.X, v.Y, v.Z)
		m.Normals = append(m.Normals, normal.X, normal.Y, normal.Z)
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
