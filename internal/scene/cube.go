package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultCubeName is used by NewStandardCube when name is empty.
const DefaultCubeName = "Cube"

// cubeVertices are the corners of a side-length 2 cube centered at the origin.
var cubeVertices = []mgl32.Vec3{
	{-1, 1, 1},
	{1, 1, 1},
	{-1, -1, 1},
	{-1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, 1},
	{1, -1, -1},
}

var cubeEdges = [][2]int{
	// front (z = 1)
	{0, 1}, {1, 6}, {6, 2}, {2, 0},
	// back (z = -1)
	{4, 5}, {5, 7}, {7, 3}, {3, 4},
	// connecting
	{0, 4}, {1, 5}, {6, 7}, {2, 3},
}

// NewStandardCube returns the 8-vertex cube with every corner at +-1 along
// its 12 geometric edges.
func NewStandardCube(name string) *Mesh {
	if name == "" {
		name = DefaultCubeName
	}
	m, err := NewMeshWithEdges(name, cubeVertices, cubeEdges)
	if err != nil {
		panic(err)
	}
	return m
}
