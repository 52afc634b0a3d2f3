// Package ebitensurface presents frame buffers in an Ebitengine window.
package ebitensurface

import (
	"fmt"
	"sync"

	"mini-raster/internal/graphics"
	"mini-raster/internal/present"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface converts published BGRA frames to RGBA and uploads the latest one
// to an ebiten.Image on Draw.
type Surface struct {
	mu     sync.Mutex
	width  int
	height int
	rgba   []byte
	dirty  bool
	img    *ebiten.Image
}

func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		rgba:   make([]byte, width*height*graphics.BytesPerPixel),
	}
}

func (s *Surface) Lock() error {
	if !s.mu.TryLock() {
		return graphics.ErrSurfaceLocked
	}
	return nil
}

func (s *Surface) WritePixels(pix []byte, stride int) error {
	if stride != s.width*graphics.BytesPerPixel || len(pix) != len(s.rgba) {
		return fmt.Errorf("frame of %d bytes (stride %d) does not fit %dx%d surface", len(pix), stride, s.width, s.height)
	}
	present.SwizzleBGRA(s.rgba, pix)
	s.dirty = true
	return nil
}

func (s *Surface) Unlock() {
	s.mu.Unlock()
}

// Draw uploads a pending frame and draws it onto screen, scaled to fit.
func (s *Surface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}
	if s.dirty {
		s.img.WritePixels(s.rgba)
		s.dirty = false
	}
	s.mu.Unlock()

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(s.width), float64(sh)/float64(s.height))
	screen.DrawImage(s.img, op)
}

// Dispose releases the GPU image.
func (s *Surface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}
