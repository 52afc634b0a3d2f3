package graphics

// Color is a normalized RGBA color. Channels are expected in [0,1] and are
// only converted to bytes when written into a FrameBuffer.
type Color struct {
	R, G, B, A float32
}

var (
	Black  = Color{0, 0, 0, 1}
	White  = Color{1, 1, 1, 1}
	Yellow = Color{1, 1, 0, 1}
)

// Bytes converts the color to 8-bit channels. Values are clamped to [0,1]
// and then truncated, so 0.5 becomes 127.
func (c Color) Bytes() (r, g, b, a byte) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(v float32) byte {
	// NaN fails both comparisons and maps to 0
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}
