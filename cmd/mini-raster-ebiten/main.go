package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"mini-raster/internal/config"
	"mini-raster/internal/game"
	"mini-raster/internal/present/ebitensurface"
	"mini-raster/internal/profiling"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostGame struct {
	loop     *game.Loop
	session  *game.Session
	surface  *ebitensurface.Surface
	lastTime time.Time
}

func (g *hostGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		log.Printf("paused: %v", config.TogglePaused())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		log.Printf("line mode: %v", g.session.Wireframe.ToggleMode())
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		log.Printf("Top tasks: %s", profiling.TopN(5))
	}

	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	g.session.Steer(axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight), axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp), dt)
	return g.loop.Tick(dt)
}

func axis(negative, positive ebiten.Key) int {
	v := 0
	if ebiten.IsKeyPressed(negative) {
		v--
	}
	if ebiten.IsKeyPressed(positive) {
		v++
	}
	return v
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Settings.Width, g.session.Settings.Height
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

	surface := ebitensurface.New(settings.Width, settings.Height)
	defer surface.Dispose()

	session, err := game.NewSession(settings, surface)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	defer session.Cleanup()

	loop := game.NewLoop(session)
	loop.SlowFrame = 16 * time.Millisecond

	ebiten.SetWindowTitle("mini-raster")
	ebiten.SetWindowSize(settings.Width*factor, settings.Height*factor)
	if settings.FPSLimit > 0 {
		ebiten.SetTPS(settings.FPSLimit)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	g := &hostGame{loop: loop, session: session, surface: surface, lastTime: time.Now()}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("render loop: %v", err)
	}
}
