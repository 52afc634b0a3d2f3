// Package present holds the display surfaces a FrameBuffer can be published
// to. ImageSurface keeps frames in memory; the glsurface and ebitensurface
// subpackages put them in a window.
package present

import (
	"fmt"
	"image"
	"sync"

	"mini-raster/internal/graphics"
)

// ImageSurface is an in-memory surface that converts published BGRA frames
// into a straight-alpha NRGBA image.
type ImageSurface struct {
	mu     sync.Mutex
	img    *image.NRGBA
	frames int
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Lock fails with graphics.ErrSurfaceLocked while another Present holds it.
func (s *ImageSurface) Lock() error {
	if !s.mu.TryLock() {
		return graphics.ErrSurfaceLocked
	}
	return nil
}

func (s *ImageSurface) Unlock() {
	s.mu.Unlock()
}

// WritePixels must be called between Lock and Unlock.
func (s *ImageSurface) WritePixels(pix []byte, stride int) error {
	w, h := s.img.Rect.Dx(), s.img.Rect.Dy()
	if stride != w*graphics.BytesPerPixel || len(pix) != stride*h {
		return fmt.Errorf("frame of %d bytes (stride %d) does not fit %dx%d surface", len(pix), stride, w, h)
	}
	swizzleBGRA(s.img.Pix, pix)
	s.frames++
	return nil
}

// Frames returns how many frames have been written.
func (s *ImageSurface) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Snapshot returns a copy of the last published frame.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewNRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// swizzleBGRA copies BGRA pixels from src into RGBA order in dst.
func swizzleBGRA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = src[i+3]
	}
}

// SwizzleBGRA is the exported form used by window surfaces that need RGBA.
func SwizzleBGRA(dst, src []byte) { swizzleBGRA(dst, src) }
