package game

import (
	"fmt"
	"math"

	"mini-raster/internal/config"
	"mini-raster/internal/graphics"
	"mini-raster/internal/graphics/renderables/wireframe"
	"mini-raster/internal/graphics/renderer"
	"mini-raster/internal/scene"
	"mini-raster/pkg/meshmodel"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	OrbitSpeed = 1.5 // radians per second
	ZoomSpeed  = 2.0 // distance factor per second
)

// Session holds all the initialized render components of one scene
type Session struct {
	Settings  config.Settings
	Frame     *graphics.FrameBuffer
	Renderer  *renderer.Renderer
	Wireframe *wireframe.Wireframe
	Camera    *scene.Camera
	Meshes    []*scene.Mesh
	Spin      scene.Spin
	Dolly     *scene.Dolly

	initialRotations []mgl32.Vec3
	initialCamera    scene.Camera
}

// NewSession builds the frame buffer, renderer and scene described by s and
// attaches surface (which may be nil) to the frame buffer.
func NewSession(s config.Settings, surface graphics.Surface) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	fb := graphics.NewFrameBuffer(s.Width, s.Height)
	fb.Attach(surface)

	lens := graphics.NewCamera(s.Width, s.Height)
	lens.FOV = s.FOV
	lens.NearPlane = s.NearPlane
	lens.FarPlane = s.FarPlane
	lens.Up = s.Up

	mode, err := wireframe.ParseMode(s.LineMode)
	if err != nil {
		return nil, err
	}
	pc := s.PointColor
	wf := wireframe.NewWireframe(graphics.Color{R: pc[0], G: pc[1], B: pc[2], A: pc[3]}, s.MinSegment, mode)

	r, err := renderer.NewRenderer(fb, lens, wf)
	if err != nil {
		return nil, err
	}

	var meshes []*scene.Mesh
	if !s.NoCube {
		meshes = append(meshes, scene.NewStandardCube(scene.DefaultCubeName))
	}
	loader := meshmodel.NewLoader("")
	for _, path := range s.Meshes {
		m, err := loader.LoadMesh(path)
		if err != nil {
			return nil, fmt.Errorf("load mesh %s: %w", path, err)
		}
		meshes = append(meshes, m)
	}

	cam := scene.NewCamera(s.Camera.Position, s.Camera.Target)
	var dolly *scene.Dolly
	if s.Dolly.Duration > 0 {
		fn := scene.EaseByName(s.Dolly.Ease)
		if fn == nil {
			return nil, fmt.Errorf("%w: unknown dolly ease %q", config.ErrInvalid, s.Dolly.Ease)
		}
		cam.Position = s.Dolly.From
		dolly = scene.NewDolly(cam, s.Camera.Position, s.Dolly.Duration, fn)
	}

	config.SetFPSLimit(s.FPSLimit)

	sess := &Session{
		Settings:      s,
		Frame:         fb,
		Renderer:      r,
		Wireframe:     wf,
		Camera:        cam,
		Meshes:        meshes,
		Spin:          scene.Spin{Step: s.Spin},
		Dolly:         dolly,
		initialCamera: *cam,
	}
	for _, m := range meshes {
		sess.initialRotations = append(sess.initialRotations, m.Rotation)
	}
	return sess, nil
}

// Reset puts meshes and camera back where they started and drops any
// running dolly.
func (s *Session) Reset() {
	for i, m := range s.Meshes {
		m.Rotation = s.initialRotations[i]
	}
	*s.Camera = s.initialCamera
	s.Dolly = nil
}

// Steer moves the camera from held controls: orbit is -1, 0 or 1 (left,
// none, right) and zoom is -1, 0 or 1 (out, none, in). Steering drops any
// running dolly.
func (s *Session) Steer(orbit, zoom int, dt float64) {
	if orbit == 0 && zoom == 0 {
		return
	}
	s.Dolly = nil
	if orbit != 0 {
		s.Camera.Orbit(float32(float64(orbit) * OrbitSpeed * dt))
	}
	if zoom != 0 {
		s.Camera.Zoom(float32(math.Pow(ZoomSpeed, -float64(zoom)*dt)))
	}
}

// Cleanup releases renderer resources.
func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Frame.Attach(nil)
}
