package game

import (
	"fmt"
	"log"
	"time"

	"mini-raster/internal/config"
	"mini-raster/internal/graphics/renderer"
	"mini-raster/internal/profiling"
)

// Loop drives a Session one frame per host tick: clear, animate, render,
// present. The host owns timing; Loop never spawns goroutines.
type Loop struct {
	Session *Session

	// SlowFrame, when positive, logs frames taking longer than it.
	SlowFrame time.Duration
	// ReportFPS prints the frame rate once per second.
	ReportFPS bool

	frame        int
	fpsFrames    int
	lastFPSCheck time.Time
	lastStats    renderer.Stats
	limiter      *FPSLimiter
	hitches      int
}

func NewLoop(s *Session) *Loop {
	return &Loop{
		Session:      s,
		lastFPSCheck: time.Now(),
		limiter:      NewFPSLimiter(),
	}
}

// Frame returns the number of frames presented so far.
func (l *Loop) Frame() int { return l.frame }

// Stats returns the render statistics of the last tick.
func (l *Loop) Stats() renderer.Stats { return l.lastStats }

// Tick renders and presents one frame; dt is the time since the previous
// tick in seconds. A Present failure is returned and the frame is not
// counted; whether to retry is up to the caller.
func (l *Loop) Tick(dt float64) error {
	profiling.ResetFrame()
	start := time.Now()
	s := l.Session

	c := s.Settings.ClearColor
	s.Frame.Clear(c[0], c[1], c[2], c[3])

	if !config.GetPaused() {
		s.Spin.Apply(s.Meshes...)
		if s.Dolly != nil {
			s.Dolly.Update(float32(dt))
			if s.Dolly.Done {
				s.Dolly = nil
			}
		}
	}

	l.lastStats = s.Renderer.Render(s.Camera, s.Meshes...)

	if err := s.Frame.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frame, err)
	}
	l.frame++

	if d := time.Since(start); l.SlowFrame > 0 && d > l.SlowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	if l.ReportFPS {
		l.fpsFrames++
		if time.Since(l.lastFPSCheck) >= time.Second {
			fmt.Println("FPS: ", l.fpsFrames)
			if h := l.limiter.Hitches(); h > l.hitches {
				log.Printf("Frame pacing lost %d times in the last second", h-l.hitches)
				l.hitches = h
			}
			l.fpsFrames = 0
			l.lastFPSCheck = time.Now()
		}
	}
	return nil
}

// Wait sleeps until the next frame is due under the configured FPS limit.
func (l *Loop) Wait() {
	l.limiter.Wait()
}
