package meshmodel

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const pyramidJSON = `{
	"vertices": [[0, 1, 0], [-1, -1, -1], [1, -1, -1], [1, -1, 1], [-1, -1, 1]],
	"edges": [[0, 1], [0, 2], [0, 3], [0, 4], [1, 2], [2, 3], [3, 4], [4, 1]],
	"position": [2, 0, 0]
}`

func writeModels(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoadJSONModel(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{"shapes/pyramid.json": pyramidJSON}))

	model, err := loader.Load("shapes/pyramid")
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	if model.Name != "pyramid" {
		t.Errorf("Expected name from file base, got '%s'", model.Name)
	}
	if len(model.Vertices) != 5 || len(model.Edges) != 8 {
		t.Errorf("Expected 5 vertices and 8 edges, got %d and %d", len(model.Vertices), len(model.Edges))
	}

	mesh, err := loader.LoadMesh("shapes/pyramid.json")
	if err != nil {
		t.Fatalf("Failed to load mesh: %v", err)
	}
	if mesh.VertexCount() != 5 || mesh.EdgeCount() != 8 {
		t.Errorf("Expected 5 vertices and 8 edges, got %d and %d", mesh.VertexCount(), mesh.EdgeCount())
	}
	if mesh.Position != (mgl32.Vec3{2, 0, 0}) || mesh.Rotation != (mgl32.Vec3{}) {
		t.Errorf("Unexpected pose %v %v", mesh.Position, mesh.Rotation)
	}
}

func TestLoadYAMLChild(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{
		"pyramid.json": pyramidJSON,
		"tilted.yaml": `
parent: pyramid
name: Tilted
rotation: [0.5, 0, 0]
`,
	}))

	mesh, err := loader.LoadMesh("tilted")
	if err != nil {
		t.Fatalf("Failed to load mesh: %v", err)
	}
	if mesh.Name != "Tilted" {
		t.Errorf("Expected name 'Tilted', got '%s'", mesh.Name)
	}
	if mesh.VertexCount() != 5 || mesh.EdgeCount() != 8 {
		t.Errorf("Expected geometry from parent, got %d vertices %d edges", mesh.VertexCount(), mesh.EdgeCount())
	}
	if mesh.Position != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("Expected position inherited from parent, got %v", mesh.Position)
	}
	if mesh.Rotation != (mgl32.Vec3{0.5, 0, 0}) {
		t.Errorf("Expected own rotation, got %v", mesh.Rotation)
	}
}

func TestChildVerticesDropParentEdges(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{
		"pyramid.json": pyramidJSON,
		"flat.yml":     "parent: pyramid\nvertices: [[0, 0, 0], [1, 0, 0]]\n",
	}))

	model, err := loader.Load("flat")
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	if len(model.Vertices) != 2 || len(model.Edges) != 0 {
		t.Errorf("Expected own 2 vertices and no edges, got %d and %d", len(model.Vertices), len(model.Edges))
	}
}

func TestSharedParentMutation(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{
		"pyramid.json": pyramidJSON,
		"left.json":    `{"parent": "pyramid", "position": [-3, 0, 0]}`,
		"right.json":   `{"parent": "pyramid", "position": [3, 0, 0]}`,
	}))

	left, err := loader.Load("left")
	if err != nil {
		t.Fatalf("Failed to load left: %v", err)
	}
	left.Vertices[0] = [3]float32{9, 9, 9}
	*left.Position = [3]float32{100, 0, 0}

	right, err := loader.Load("right")
	if err != nil {
		t.Fatalf("Failed to load right: %v", err)
	}
	if right.Vertices[0] != [3]float32{0, 1, 0} {
		t.Errorf("Right should see the parent's apex, got %v. Likely parent pollution.", right.Vertices[0])
	}
	if *right.Position != [3]float32{3, 0, 0} {
		t.Errorf("Right should keep its own position, got %v", *right.Position)
	}

	again, _ := loader.Load("left")
	if again.Vertices[0] != [3]float32{0, 1, 0} || *again.Position != [3]float32{-3, 0, 0} {
		t.Errorf("Model in cache was mutated! Got %v %v", again.Vertices[0], *again.Position)
	}
	parent, _ := loader.Load("pyramid")
	if *parent.Position != [3]float32{2, 0, 0} {
		t.Errorf("Parent model in cache was mutated! Got %v", *parent.Position)
	}
}

func TestParentCycle(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{
		"a.json": `{"parent": "b"}`,
		"b.json": `{"parent": "a"}`,
	}))
	if _, err := loader.Load("a"); err == nil {
		t.Errorf("Expected error for parent cycle")
	}
}

func TestLoadErrors(t *testing.T) {
	loader := NewLoader(writeModels(t, map[string]string{
		"empty.json":  `{"name": "nothing"}`,
		"broken.json": `{"vertices": [`,
		"bad.json":    `{"vertices": [[0, 0, 0]], "edges": [[0, 1]]}`,
		"orphan.json": `{"parent": "missing"}`,
	}))

	if _, err := loader.LoadMesh("empty"); !errors.Is(err, ErrNoVertices) {
		t.Errorf("Expected ErrNoVertices, got %v", err)
	}
	if _, err := loader.Load("broken"); err == nil {
		t.Errorf("Expected decode error")
	}
	if _, err := loader.LoadMesh("bad"); err == nil {
		t.Errorf("Expected edge range error")
	}
	if _, err := loader.Load("orphan"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected missing parent to wrap fs.ErrNotExist, got %v", err)
	}
	if _, err := loader.Load("nowhere"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}
