package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings holds everything a render host needs to build its scene and
// rasterizer.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	FOV       float32    `yaml:"fov"` // radians
	NearPlane float32    `yaml:"near"`
	FarPlane  float32    `yaml:"far"`
	Up        mgl32.Vec3 `yaml:"up"`

	ClearColor [4]uint8   `yaml:"clearColor"` // r, g, b, a
	PointColor [4]float32 `yaml:"pointColor"` // r, g, b, a in [0,1]
	MinSegment float32    `yaml:"minSegment"`
	LineMode   string     `yaml:"lineMode"` // "all-pairs" or "edges"

	Camera CameraSettings `yaml:"camera"`
	Spin   mgl32.Vec3     `yaml:"spin"` // rotation added per frame
	Dolly  DollySettings  `yaml:"dolly"`

	// Meshes are extra mesh files loaded next to the standard cube.
	Meshes   []string `yaml:"meshes,omitempty"`
	NoCube   bool     `yaml:"noCube,omitempty"`
	FPSLimit int      `yaml:"fpsLimit"`
}

type CameraSettings struct {
	Position mgl32.Vec3 `yaml:"position"`
	Target   mgl32.Vec3 `yaml:"target"`
}

// DollySettings describes an eased camera move from From to Camera.Position
// at startup. A zero Duration disables it.
type DollySettings struct {
	From     mgl32.Vec3 `yaml:"from"`
	Duration float32    `yaml:"duration"` // seconds
	Ease     string     `yaml:"ease"`
}

// Default returns the reference configuration: a 640x480 black buffer,
// yellow points, 0.78 rad FOV, near 0.01, far 1.0 and a camera at (0,0,10)
// looking at the origin.
func Default() Settings {
	return Settings{
		Width:      640,
		Height:     480,
		FOV:        0.78,
		NearPlane:  0.01,
		FarPlane:   1.0,
		Up:         mgl32.Vec3{0, 1, 0},
		ClearColor: [4]uint8{0, 0, 0, 255},
		PointColor: [4]float32{1, 1, 0, 1},
		MinSegment: 2,
		LineMode:   "all-pairs",
		Camera: CameraSettings{
			Position: mgl32.Vec3{0, 0, 10},
			Target:   mgl32.Vec3{0, 0, 0},
		},
		Spin:     mgl32.Vec3{0.01, 0.01, 0},
		FPSLimit: 60,
	}
}

// Validate checks the settings and returns an error wrapping ErrInvalid
// describing the first problem found.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return invalid("resolution %dx%d must be positive", s.Width, s.Height)
	case !finite(s.FOV) || s.FOV <= 0 || s.FOV >= math.Pi:
		return invalid("fov %v must be in (0, pi)", s.FOV)
	case !finite(s.NearPlane) || s.NearPlane <= 0:
		return invalid("near plane %v must be positive", s.NearPlane)
	case !finite(s.FarPlane) || s.FarPlane == s.NearPlane:
		return invalid("far plane %v must differ from near plane", s.FarPlane)
	case s.Up.Len() == 0 || !finite(s.Up.Len()):
		return invalid("up vector %v must be non-zero", s.Up)
	case !finite(s.MinSegment) || s.MinSegment <= 0:
		return invalid("min segment %v must be positive", s.MinSegment)
	case s.Camera.Position == s.Camera.Target:
		return invalid("camera position and target are both %v", s.Camera.Position)
	case s.Dolly.Duration < 0:
		return invalid("dolly duration %v must not be negative", s.Dolly.Duration)
	case s.FPSLimit < 0:
		return invalid("fps limit %d must not be negative", s.FPSLimit)
	}
	for i, c := range s.PointColor {
		if !finite(c) || c < 0 || c > 1 {
			return invalid("point color channel %d = %v outside [0,1]", i, c)
		}
	}
	if s.LineMode != "" && s.LineMode != "all-pairs" && s.LineMode != "edges" {
		return invalid("unknown line mode %q", s.LineMode)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
