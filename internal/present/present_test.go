package present

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"mini-raster/internal/graphics"

	"golang.org/x/image/bmp"
)

func TestSwizzleBGRA(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, len(src))
	SwizzleBGRA(dst, src)
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	if !bytes.Equal(dst, want) {
		t.Errorf("Expected %v, got %v", want, dst)
	}
}

func TestImageSurfacePresent(t *testing.T) {
	fb := graphics.NewFrameBuffer(4, 3)
	surface := NewImageSurface(4, 3)
	fb.Attach(surface)

	fb.Clear(10, 20, 30, 255)
	fb.PutPixel(2, 1, graphics.Yellow)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	img := surface.Snapshot()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("Expected clear color, got %v", got)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{255, 255, 0, 255}) {
		t.Errorf("Expected yellow, got %v", got)
	}
	if surface.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", surface.Frames())
	}

	img.SetNRGBA(0, 0, color.NRGBA{})
	if got := surface.Snapshot().NRGBAAt(0, 0); got.A != 255 {
		t.Errorf("Expected Snapshot to return a copy")
	}
}

func TestImageSurfaceLocked(t *testing.T) {
	fb := graphics.NewFrameBuffer(2, 2)
	surface := NewImageSurface(2, 2)
	fb.Attach(surface)

	if err := surface.Lock(); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	err := fb.Present()
	if !errors.Is(err, graphics.ErrSurfaceLocked) {
		t.Errorf("Expected ErrSurfaceLocked, got %v", err)
	}
	surface.Unlock()

	if err := fb.Present(); err != nil {
		t.Errorf("Expected Present to succeed after unlock, got %v", err)
	}
}

func TestImageSurfaceSizeMismatch(t *testing.T) {
	fb := graphics.NewFrameBuffer(3, 3)
	surface := NewImageSurface(2, 2)
	fb.Attach(surface)

	if err := fb.Present(); err == nil {
		t.Errorf("Expected size mismatch error")
	}
	if surface.Frames() != 0 {
		t.Errorf("Expected no frames written, got %d", surface.Frames())
	}
	// The failed write must still release the lock.
	if err := surface.Lock(); err != nil {
		t.Errorf("Expected surface unlocked after failure, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, "PNG": FormatPNG, "bmp": FormatBMP} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q): expected %q, got %q (%v)", in, want, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Errorf("Expected error for gif")
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 0, 255})
	return img
}

func TestEncodeDecodes(t *testing.T) {
	for _, f := range []Format{FormatPNG, FormatBMP} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(), f); err != nil {
			t.Fatalf("%s: encode failed: %v", f, err)
		}
		img, format, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode failed: %v", f, err)
		}
		if format != string(f) {
			t.Errorf("Expected format %s, got %s", f, format)
		}
		r, g, b, _ := img.At(1, 1).RGBA()
		if r>>8 != 255 || g>>8 != 255 || b != 0 {
			t.Errorf("%s: expected yellow at (1,1), got %d %d %d", f, r>>8, g>>8, b>>8)
		}
	}

	if err := Encode(&bytes.Buffer{}, testImage(), Format("tga")); err == nil {
		t.Errorf("Expected error for unknown format")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames", "nested", "frame_0001.bmp")
	if err := WriteFile(path, testImage(), FormatBMP); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2, got %v", img.Bounds())
	}
}
