package meshmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mini-raster/internal/scene"

	"gopkg.in/yaml.v3"
)

// maxParentDepth bounds parent chains, which also stops cycles.
const maxParentDepth = 10

var extensions = []string{".json", ".yaml", ".yml"}

// Loader reads mesh models relative to a root directory and caches them by
// name. Returned models are copies and may be modified freely.
type Loader struct {
	root       string
	modelCache map[string]*Model
}

func NewLoader(root string) *Loader {
	return &Loader{
		root:       root,
		modelCache: make(map[string]*Model),
	}
}

// Load returns the model called name. name may carry an extension; without
// one .json, .yaml and .yml are tried in that order.
func (l *Loader) Load(name string) (*Model, error) {
	m, err := l.load(name, 0)
	if err != nil {
		return nil, err
	}
	return m.clone(), nil
}

// LoadMesh is Load followed by Model.Mesh.
func (l *Loader) LoadMesh(name string) (*scene.Mesh, error) {
	m, err := l.load(name, 0)
	if err != nil {
		return nil, err
	}
	mesh, err := m.Mesh()
	if err != nil {
		return nil, fmt.Errorf("model '%s': %w", name, err)
	}
	return mesh, nil
}

func (l *Loader) load(name string, depth int) (*Model, error) {
	if depth > maxParentDepth {
		return nil, fmt.Errorf("model '%s': parent chain deeper than %d", name, maxParentDepth)
	}
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}

	path, data, err := l.read(name)
	if err != nil {
		return nil, err
	}

	var model Model
	if err := decode(path, data, &model); err != nil {
		return nil, err
	}

	if model.Parent != "" {
		parent, err := l.load(model.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Parent, err)
		}
		if len(model.Vertices) == 0 {
			model.Vertices = append([][3]float32(nil), parent.Vertices...)
			if len(model.Edges) == 0 {
				model.Edges = append([][2]int(nil), parent.Edges...)
			}
		}
		if model.Position == nil && parent.Position != nil {
			p := *parent.Position
			model.Position = &p
		}
		if model.Rotation == nil && parent.Rotation != nil {
			r := *parent.Rotation
			model.Rotation = &r
		}
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	l.modelCache[name] = &model
	return &model, nil
}

func (l *Loader) read(name string) (string, []byte, error) {
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range extensions {
			candidates = append(candidates, name+ext)
		}
	}

	for _, c := range candidates {
		path := filepath.Join(l.root, c)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("could not read model file: %w", err)
		}
		return path, data, nil
	}
	return "", nil, fmt.Errorf("could not read model file: %s: %w", name, fs.ErrNotExist)
}

func decode(path string, data []byte, m *Model) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, m); err != nil {
			return fmt.Errorf("could not unmarshal model yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, m); err != nil {
			return fmt.Errorf("could not unmarshal model json: %w", err)
		}
	}
	return nil
}
