package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Width != 640 || s.Height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", s.Width, s.Height)
	}
	if s.FOV != 0.78 || s.NearPlane != 0.01 || s.FarPlane != 1.0 {
		t.Errorf("Expected fov 0.78 near 0.01 far 1.0, got %v %v %v", s.FOV, s.NearPlane, s.FarPlane)
	}
	if s.Camera.Position != (mgl32.Vec3{0, 0, 10}) || s.Camera.Target != (mgl32.Vec3{}) {
		t.Errorf("Unexpected camera %+v", s.Camera)
	}
	if s.PointColor != [4]float32{1, 1, 0, 1} {
		t.Errorf("Expected yellow points, got %v", s.PointColor)
	}
	if s.MinSegment != 2 {
		t.Errorf("Expected min segment 2, got %v", s.MinSegment)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	s, err := Parse([]byte(`
width: 320
height: 200
lineMode: edges
camera:
  position: [0, 2, 8]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Width != 320 || s.Height != 200 || s.LineMode != "edges" {
		t.Errorf("Expected overrides to apply, got %dx%d %q", s.Width, s.Height, s.LineMode)
	}
	if s.Camera.Position != (mgl32.Vec3{0, 2, 8}) {
		t.Errorf("Expected camera position (0, 2, 8), got %v", s.Camera.Position)
	}
	if s.FOV != 0.78 || s.MinSegment != 2 {
		t.Errorf("Expected unspecified fields to keep defaults, got fov %v min %v", s.FOV, s.MinSegment)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"resolution":  "width: 0",
		"fov":         "fov: 3.5",
		"near":        "near: -1",
		"far":         "far: 0.01",
		"up":          "up: [0, 0, 0]",
		"min segment": "minSegment: 0",
		"camera":      "camera: {position: [0, 0, 0]}",
		"dolly":       "dolly: {duration: -1}",
		"fps":         "fpsLimit: -5",
		"color":       "pointColor: [1, 2, 0, 1]",
		"line mode":   "lineMode: spiral",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}

	_, err := Parse([]byte("width: [1, 2"))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Expected a YAML syntax error, got %v", err)
	}
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raster.yaml")
	want := Default()
	want.Width = 800
	want.Meshes = []string{"models/pyramid.json"}
	want.Dolly = DollySettings{From: mgl32.Vec3{0, 0, 30}, Duration: 2, Ease: "out-cubic"}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Width != 800 || got.Dolly != want.Dolly || len(got.Meshes) != 1 || got.Meshes[0] != want.Meshes[0] {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.FOV != want.FOV || got.Spin != want.Spin {
		t.Errorf("Expected float fields to survive, got fov %v spin %v", got.FOV, got.Spin)
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
	if s.Width != 640 {
		t.Errorf("Expected default width, got %d", s.Width)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("Expected 1000, got %d", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Errorf("Expected 144, got %d", got)
	}
}

func TestTogglePaused(t *testing.T) {
	defer SetPaused(false)

	SetPaused(false)
	if !TogglePaused() || !GetPaused() {
		t.Errorf("Expected paused after toggle")
	}
	if TogglePaused() {
		t.Errorf("Expected running after second toggle")
	}
}
