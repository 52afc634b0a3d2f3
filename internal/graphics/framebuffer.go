package graphics

import (
	"errors"
	"fmt"

	"mini-raster/internal/profiling"
)

var (
	// ErrNoSurface is returned by Present when no surface is attached.
	ErrNoSurface = errors.New("graphics: no surface attached")
	// ErrSurfaceLocked is returned by a Surface that is already locked.
	ErrSurfaceLocked = errors.New("graphics: surface already locked")
)

// BytesPerPixel is the size of one BGRA pixel.
const BytesPerPixel = 4

// Surface is the display target a FrameBuffer is published to. The pixels
// handed to WritePixels are BGRA, row-major, top-left origin.
//
// Unlock is called exactly once after every successful Lock, including when
// WritePixels fails.
type Surface interface {
	Lock() error
	WritePixels(pix []byte, stride int) error
	Unlock()
}

// FrameBuffer is the software back buffer. It is created once per resolution
// and reused every frame.
type FrameBuffer struct {
	width   int
	height  int
	buf     []byte
	surface Surface
}

// NewFrameBuffer allocates a width*height BGRA buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*BytesPerPixel),
	}
}

func (fb *FrameBuffer) Width() int       { return fb.width }
func (fb *FrameBuffer) Height() int      { return fb.height }
func (fb *FrameBuffer) Stride() int      { return fb.width * BytesPerPixel }
func (fb *FrameBuffer) Bytes() []byte    { return fb.buf }
func (fb *FrameBuffer) Surface() Surface { return fb.surface }

// Attach sets the surface used by Present. A nil surface detaches.
func (fb *FrameBuffer) Attach(s Surface) {
	fb.surface = s
}

// Clear fills every pixel with the given color in b, g, r, a byte order.
func (fb *FrameBuffer) Clear(r, g, b, a byte) {
	for i := 0; i < len(fb.buf); i += BytesPerPixel {
		fb.buf[i] = b
		fb.buf[i+1] = g
		fb.buf[i+2] = r
		fb.buf[i+3] = a
	}
}

// PutPixel writes one pixel. It does not bounds-check; callers must clip
// against Width and Height first.
func (fb *FrameBuffer) PutPixel(x, y int, c Color) {
	index := (x + y*fb.width) * BytesPerPixel
	r, g, b, a := c.Bytes()
	fb.buf[index] = b
	fb.buf[index+1] = g
	fb.buf[index+2] = r
	fb.buf[index+3] = a
}

// Pixel reads back the pixel at x, y as r, g, b, a.
func (fb *FrameBuffer) Pixel(x, y int) (r, g, b, a byte) {
	index := (x + y*fb.width) * BytesPerPixel
	return fb.buf[index+2], fb.buf[index+1], fb.buf[index], fb.buf[index+3]
}

// Present publishes the buffer to the attached surface. The surface lock is
// held only for the copy and is released on every path once acquired.
func (fb *FrameBuffer) Present() error {
	defer profiling.Track("graphics.Present")()

	s := fb.surface
	if s == nil {
		return ErrNoSurface
	}
	if err := s.Lock(); err != nil {
		return fmt.Errorf("lock surface: %w", err)
	}
	defer s.Unlock()

	if err := s.WritePixels(fb.buf, fb.Stride()); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}
	return nil
}
