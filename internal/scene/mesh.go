package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a named set of vertices with a world pose. Vertices and edges are
// fixed at construction; Position and Rotation (Euler angles, radians) are
// mutated by the host between frames.
type Mesh struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3

	vertices []mgl32.Vec3
	edges    [][2]int
}

// NewMesh copies vertices into a new mesh.
func NewMesh(name string, vertices []mgl32.Vec3) *Mesh {
	v := make([]mgl32.Vec3, len(vertices))
	copy(v, vertices)
	return &Mesh{Name: name, vertices: v}
}

// NewMeshWithEdges is NewMesh plus an explicit edge list. Every edge must
// reference two valid vertex indices.
func NewMeshWithEdges(name string, vertices []mgl32.Vec3, edges [][2]int) (*Mesh, error) {
	m := NewMesh(name, vertices)
	for i, e := range edges {
		if e[0] < 0 || e[0] >= len(vertices) || e[1] < 0 || e[1] >= len(vertices) {
			return nil, fmt.Errorf("mesh %q: edge %d (%d-%d) out of range for %d vertices", name, i, e[0], e[1], len(vertices))
		}
	}
	m.edges = make([][2]int, len(edges))
	copy(m.edges, edges)
	return m, nil
}

func (m *Mesh) VertexCount() int        { return len(m.vertices) }
func (m *Mesh) Vertex(i int) mgl32.Vec3 { return m.vertices[i] }
func (m *Mesh) EdgeCount() int          { return len(m.edges) }
func (m *Mesh) Edge(i int) (a, b int)   { return m.edges[i][0], m.edges[i][1] }
func (m *Mesh) HasEdges() bool          { return len(m.edges) > 0 }

// Vertices returns a copy of the mesh-local vertices.
func (m *Mesh) Vertices() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.vertices))
	copy(out, m.vertices)
	return out
}
