package wireframe

import (
	"fmt"

	"mini-raster/internal/graphics"
	renderer "mini-raster/internal/graphics/renderer"
	"mini-raster/internal/profiling"
	"mini-raster/internal/raster"
	"mini-raster/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects which vertex pairs are connected.
type Mode int

const (
	// ModeAllPairs draws a line for every ordered pair of vertices,
	// including each vertex with itself. This gives the classic "every
	// corner connected to every corner" look.
	ModeAllPairs Mode = iota
	// ModeEdges draws only the mesh's edge list. Meshes without one fall
	// back to ModeAllPairs.
	ModeEdges
)

func (m Mode) String() string {
	switch m {
	case ModeAllPairs:
		return "all-pairs"
	case ModeEdges:
		return "edges"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "all-pairs":
		return ModeAllPairs, nil
	case "edges":
		return ModeEdges, nil
	}
	return 0, fmt.Errorf("unknown line mode %q", s)
}

// Wireframe projects mesh vertices, plots them and connects them with
// midpoint-subdivided lines.
type Wireframe struct {
	Color      graphics.Color
	MinSegment float32

	mode   Mode
	points []mgl32.Vec2
	local  []mgl32.Vec3
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(color graphics.Color, minSegment float32, mode Mode) *Wireframe {
	return &Wireframe{Color: color, MinSegment: minSegment, mode: mode}
}

// Init validates the configuration.
func (w *Wireframe) Init() error {
	if !(w.MinSegment > 0) {
		return fmt.Errorf("wireframe: min segment must be positive, got %v", w.MinSegment)
	}
	if w.mode != ModeAllPairs && w.mode != ModeEdges {
		return fmt.Errorf("wireframe: invalid mode %v", w.mode)
	}
	return nil
}

func (w *Wireframe) Mode() Mode           { return w.mode }
func (w *Wireframe) SetMode(m Mode)       { w.mode = m }
func (w *Wireframe) Dispose()             {}
func (w *Wireframe) SetViewport(_, _ int) {}

// ToggleMode flips between all-pairs and edge-list drawing.
func (w *Wireframe) ToggleMode() Mode {
	if w.mode == ModeAllPairs {
		w.mode = ModeEdges
	} else {
		w.mode = ModeAllPairs
	}
	return w.mode
}

// Render draws every mesh of the context into its target.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.wireframe")()

	p := raster.NewPlotter(ctx.Target, w.Color, w.MinSegment)
	viewProj := ctx.Proj.Mul4(ctx.View)
	width, height := ctx.Target.Width(), ctx.Target.Height()

	for _, mesh := range ctx.Meshes {
		transform := viewProj.Mul4(graphics.WorldMatrix(mesh.Position, mesh.Rotation))

		w.local = w.local[:0]
		for i := 0; i < mesh.VertexCount(); i++ {
			w.local = append(w.local, mesh.Vertex(i))
		}
		w.points = raster.ProjectAll(w.points, w.local, transform, width, height)

		for _, pt := range w.points {
			p.DrawPoint(pt)
		}
		lines := w.drawLines(p, mesh)

		if ctx.Stats != nil {
			ctx.Stats.Meshes++
			ctx.Stats.Vertices += len(w.points)
			ctx.Stats.Lines += lines
		}
	}

	if ctx.Stats != nil {
		ctx.Stats.Points += p.Plotted()
	}
}

func (w *Wireframe) drawLines(p *raster.Plotter, mesh *scene.Mesh) int {
	if w.mode == ModeEdges && mesh.HasEdges() {
		for i := 0; i < mesh.EdgeCount(); i++ {
			a, b := mesh.Edge(i)
			p.DrawLine(w.points[a], w.points[b])
		}
		return mesh.EdgeCount()
	}

	for i := range w.points {
		for j := range w.points {
			p.DrawLine(w.points[i], w.points[j])
		}
	}
	return len(w.points) * len(w.points)
}
