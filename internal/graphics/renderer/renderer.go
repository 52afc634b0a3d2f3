package renderer

import (
	"mini-raster/internal/graphics"
	"mini-raster/internal/profiling"
	"mini-raster/internal/scene"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	target      *graphics.FrameBuffer
}

// NewRenderer creates a new renderer drawing into target with the given
// renderables. The camera's aspect ratio is set from the target size.
func NewRenderer(target *graphics.FrameBuffer, camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	if camera == nil {
		camera = graphics.NewCamera(target.Width(), target.Height())
	}

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
		target:      target,
	}
	renderer.UpdateViewport(target.Width(), target.Height())

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render draws meshes as seen from eye into the target. View and projection
// are computed once and shared by every mesh. Neither eye nor the meshes are
// modified.
func (r *Renderer) Render(eye *scene.Camera, meshes ...*scene.Mesh) Stats {
	defer profiling.Track("renderer.Render")()

	var stats Stats
	ctx := RenderContext{
		Camera: r.camera,
		Eye:    eye,
		Meshes: meshes,
		Target: r.target,
		View:   r.camera.GetViewMatrix(eye),
		Proj:   r.camera.GetProjectionMatrix(),
		Stats:  &stats,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
	return stats
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// Target returns the frame buffer being drawn into.
func (r *Renderer) Target() *graphics.FrameBuffer {
	return r.target
}

// SetTarget switches to a frame buffer of a (possibly) new resolution.
func (r *Renderer) SetTarget(fb *graphics.FrameBuffer) {
	r.target = fb
	r.UpdateViewport(fb.Width(), fb.Height())
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
