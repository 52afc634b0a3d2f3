package meshmodel

import (
	"errors"

	"mini-raster/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoVertices is returned when a model (after parent resolution) has no
// vertices to build a mesh from.
var ErrNoVertices = errors.New("meshmodel: model has no vertices")

// Model is the on-disk description of a mesh, in JSON or YAML.
//
//	{
//	  "parent": "cube",
//	  "name": "tilted",
//	  "rotation": [0, 0.5, 0]
//	}
type Model struct {
	Parent   string       `json:"parent" yaml:"parent"`
	Name     string       `json:"name" yaml:"name"`
	Vertices [][3]float32 `json:"vertices" yaml:"vertices"`
	Edges    [][2]int     `json:"edges" yaml:"edges"`
	Position *[3]float32  `json:"position" yaml:"position"`
	Rotation *[3]float32  `json:"rotation" yaml:"rotation"`
}

// Mesh builds a scene mesh posed at the model's position and rotation.
func (m *Model) Mesh() (*scene.Mesh, error) {
	if len(m.Vertices) == 0 {
		return nil, ErrNoVertices
	}
	vertices := make([]mgl32.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = mgl32.Vec3(v)
	}

	mesh, err := scene.NewMeshWithEdges(m.Name, vertices, m.Edges)
	if err != nil {
		return nil, err
	}
	if m.Position != nil {
		mesh.Position = mgl32.Vec3(*m.Position)
	}
	if m.Rotation != nil {
		mesh.Rotation = mgl32.Vec3(*m.Rotation)
	}
	return mesh, nil
}

func (m *Model) clone() *Model {
	c := *m
	c.Vertices = append([][3]float32(nil), m.Vertices...)
	c.Edges = append([][2]int(nil), m.Edges...)
	if m.Position != nil {
		p := *m.Position
		c.Position = &p
	}
	if m.Rotation != nil {
		r := *m.Rotation
		c.Rotation = &r
	}
	return &c
}
