package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSpinStep is the per-frame rotation increment of the demo scene.
var DefaultSpinStep = mgl32.Vec3{0.01, 0.01, 0}

// Spin rotates meshes by a fixed Euler step each time it is applied.
type Spin struct {
	Step mgl32.Vec3
}

// Apply adds Step to the rotation of every mesh.
func (s Spin) Apply(meshes ...*Mesh) {
	for _, m := range meshes {
		m.Rotation = m.Rotation.Add(s.Step)
	}
}

// Dolly eases a camera from its current position to a destination.
// There is no global animation manager; call Update once per frame.
type Dolly struct {
	tweens [3]*gween.Tween
	camera *Camera
	Done   bool
}

// NewDolly starts a move of camera to the given position over duration
// seconds. A nil easing function means linear.
func NewDolly(camera *Camera, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *Dolly {
	if fn == nil {
		fn = ease.Linear
	}
	d := &Dolly{camera: camera}
	for i := range d.tweens {
		d.tweens[i] = gween.New(camera.Position[i], to[i], duration, fn)
	}
	return d
}

// Update advances the move by dt seconds and writes the new position.
func (d *Dolly) Update(dt float32) {
	if d.Done {
		return
	}
	allDone := true
	for i, t := range d.tweens {
		val, finished := t.Update(dt)
		d.camera.Position[i] = val
		if !finished {
			allDone = false
		}
	}
	d.Done = allDone
}

// EaseByName maps a config name to an easing function. Unknown names
// return nil.
func EaseByName(name string) ease.TweenFunc {
	switch name {
	case "", "linear":
		return ease.Linear
	case "in-out-quad":
		return ease.InOutQuad
	case "out-cubic":
		return ease.OutCubic
	case "out-quint":
		return ease.OutQuint
	case "out-bounce":
		return ease.OutBounce
	}
	return nil
}
