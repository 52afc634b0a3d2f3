package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"mini-raster/internal/config"
	"mini-raster/internal/game"
	"mini-raster/internal/input"
	"mini-raster/internal/present/glsurface"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file (defaults when empty)")
	scale := flag.Int("scale", 1, "window size multiplier")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	factor := max(*scale, 1)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Window setup
	window, err := setupWindow(settings.Width*factor, settings.Height*factor)
	if err != nil {
		panic(err)
	}

	surface, err := glsurface.New(settings.Width, settings.Height)
	if err != nil {
		log.Fatalf("surface: %v", err)
	}
	defer surface.Dispose()

	session, err := game.NewSession(settings, surface)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	defer session.Cleanup()

	loop := game.NewLoop(session)
	loop.ReportFPS = true
	loop.SlowFrame = 16 * time.Millisecond

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	if err := runLoop(window, im, loop, surface); err != nil {
		log.Fatalf("render loop: %v", err)
	}
}

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "mini-raster", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Frame pacing comes from the FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}

func runLoop(window *glfw.Window, im *input.InputManager, loop *game.Loop, surface *glsurface.Surface) error {
	lastTime := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		handleInput(window, im, loop.Session, dt)
		if err := loop.Tick(dt); err != nil {
			return err
		}

		fbw, fbh := window.GetFramebufferSize()
		surface.Draw(fbw, fbh)
		window.SwapBuffers()
		glfw.PollEvents()

		loop.Wait()
	}
	return nil
}
