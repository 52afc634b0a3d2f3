// Package glsurface presents frame buffers through an OpenGL 4.1 texture.
// All methods must be called on the thread owning the GL context.
package glsurface

import (
	"fmt"
	"unsafe"

	"mini-raster/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fullscreen triangle generated from gl_VertexID; v is flipped so row 0 of
// the frame is the top of the window.
const vertexSrc = `#version 410 core
out vec2 uv;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	uv = vec2(pos.x, 1.0 - pos.y);
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}`

const fragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D frame;
out vec4 fragColor;
void main() {
	fragColor = texture(frame, uv);
}`

// Surface streams BGRA frames through a pixel-unpack buffer into a texture.
// Lock maps the buffer, Unlock unmaps it and uploads the texture.
type Surface struct {
	width  int
	height int
	size   int

	tex  uint32
	pbo  uint32
	vao  uint32
	prog program

	mapped unsafe.Pointer
}

// New creates the GL objects for a width x height surface.
func New(width, height int) (*Surface, error) {
	prog, err := newProgram(
		stage{gl.VERTEX_SHADER, "vertex", vertexSrc},
		stage{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		width:  width,
		height: height,
		size:   width * height * graphics.BytesPerPixel,
		prog:   prog,
	}

	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.BGRA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenBuffers(1, &s.pbo)
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, s.pbo)
	gl.BufferData(gl.PIXEL_UNPACK_BUFFER, s.size, nil, gl.STREAM_DRAW)
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)

	gl.GenVertexArrays(1, &s.vao)

	prog.use()
	prog.setInt("frame", 0)

	return s, nil
}

// Lock maps the pixel buffer for writing.
func (s *Surface) Lock() error {
	if s.mapped != nil {
		return graphics.ErrSurfaceLocked
	}
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, s.pbo)
	// orphan the previous frame's storage so the driver does not stall
	gl.BufferData(gl.PIXEL_UNPACK_BUFFER, s.size, nil, gl.STREAM_DRAW)
	ptr := gl.MapBufferRange(gl.PIXEL_UNPACK_BUFFER, 0, s.size, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
	if ptr == nil {
		gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)
		return fmt.Errorf("map pixel buffer: gl error 0x%x", gl.GetError())
	}
	s.mapped = ptr
	return nil
}

func (s *Surface) WritePixels(pix []byte, stride int) error {
	if s.mapped == nil {
		return fmt.Errorf("write pixels: surface not locked")
	}
	if stride != s.width*graphics.BytesPerPixel || len(pix) != s.size {
		return fmt.Errorf("frame of %d bytes (stride %d) does not fit %dx%d surface", len(pix), stride, s.width, s.height)
	}
	copy(unsafe.Slice((*byte)(s.mapped), s.size), pix)
	return nil
}

// Unlock unmaps the buffer and uploads it into the texture.
func (s *Surface) Unlock() {
	if s.mapped == nil {
		return
	}
	ok := gl.UnmapBuffer(gl.PIXEL_UNPACK_BUFFER)
	s.mapped = nil
	if ok {
		gl.BindTexture(gl.TEXTURE_2D, s.tex)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(s.width), int32(s.height), gl.BGRA, gl.UNSIGNED_BYTE, gl.PtrOffset(0))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)
}

// Draw stretches the last uploaded frame over a viewport of the given size.
func (s *Surface) Draw(viewportWidth, viewportHeight int) {
	gl.Viewport(0, 0, int32(viewportWidth), int32(viewportHeight))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.prog.use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (s *Surface) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.pbo != 0 {
		gl.DeleteBuffers(1, &s.pbo)
	}
	if s.tex != 0 {
		gl.DeleteTextures(1, &s.tex)
	}
	s.prog.delete()
}
