package graphics

import (
	"mini-raster/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection defaults. FOV is the vertical field of view in radians.
const (
	DefaultFOV       = float32(0.78)
	DefaultNearPlane = float32(0.01)
	DefaultFarPlane  = float32(1.0)
)

// DefaultUp is the up-vector used for the look-at transform.
var DefaultUp = mgl32.Vec3{0, 1, 0}

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Up          mgl32.Vec3
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       DefaultFOV,
		NearPlane: DefaultNearPlane,
		FarPlane:  DefaultFarPlane,
		Up:        DefaultUp,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport recomputes the aspect ratio for a width x height target.
func (c *Camera) SetViewport(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix(cam *scene.Camera) mgl32.Mat4 {
	return LookAtLH(cam.Position, cam.Target, c.Up)
}

// LookAtLH builds a left-handed look-at transform: the camera looks down its
// positive z axis. Paired with the right-handed perspective from mgl32 this
// puts world +Y toward the top of a top-left-origin buffer.
//
// A degenerate eye/target/up combination yields NaN entries; projected points
// then come out non-finite and are dropped by the rasterizer.
func LookAtLH(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// WorldMatrix rotates by roll (Z), then pitch (X), then yaw (Y) and finally
// translates to position.
func WorldMatrix(position, rotation mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl32.HomogRotate3DY(rotation[1])).
		Mul4(mgl32.HomogRotate3DX(rotation[0])).
		Mul4(mgl32.HomogRotate3DZ(rotation[2]))
}
