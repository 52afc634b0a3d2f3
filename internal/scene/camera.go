package scene

import "github.com/go-gl/mathgl/mgl32"

// MinZoomDistance is the closest Zoom will bring the camera to its target.
const MinZoomDistance = 0.5

// Camera is the eye of a render pass: where it sits and what it looks at.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

func NewCamera(position, target mgl32.Vec3) *Camera {
	return &Camera{Position: position, Target: target}
}

// Orbit swings the camera around the world Y axis through Target by angle
// radians, keeping its distance and height.
func (c *Camera) Orbit(angle float32) {
	offset := c.Position.Sub(c.Target)
	c.Position = c.Target.Add(mgl32.Rotate3DY(angle).Mul3x1(offset))
}

// Zoom scales the camera's distance to Target by factor. Moves that would
// end closer than MinZoomDistance, or that are not finite, are ignored.
func (c *Camera) Zoom(factor float32) {
	offset := c.Position.Sub(c.Target).Mul(factor)
	if d := offset.Len(); !(d >= MinZoomDistance) || d > 1e6 {
		return
	}
	c.Position = c.Target.Add(offset)
}
