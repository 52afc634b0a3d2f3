package renderer

import (
	"mini-raster/internal/graphics"
	"mini-raster/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	Eye    *scene.Camera
	Meshes []*scene.Mesh
	Target *graphics.FrameBuffer
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Stats  *Stats
}

// Stats counts the work done by one Render call.
type Stats struct {
	Meshes   int
	Vertices int
	Points   int // pixels written, vertices and line midpoints alike
	Lines    int // DrawLine calls issued
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
