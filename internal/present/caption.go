package present

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Captioner stamps a line of text into the top-left corner of a frame.
type Captioner struct {
	Color  color.Color
	Margin int

	face font.Face
}

// NewCaptioner builds a captioner using the Go Mono face at size pixels.
func NewCaptioner(size float64) (*Captioner, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &Captioner{Color: color.White, Margin: 4, face: face}, nil
}

// Draw renders text onto img. Text beyond the right edge is clipped.
func (c *Captioner) Draw(img draw.Image, text string) {
	b := img.Bounds()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Color),
		Face: c.face,
		Dot:  fixed.P(b.Min.X+c.Margin, b.Min.Y+c.Margin+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// Bounds returns the rectangle Draw would cover inside img.
func (c *Captioner) Bounds(img image.Image, text string) image.Rectangle {
	b := img.Bounds()
	m := c.face.Metrics()
	w := font.MeasureString(c.face, text).Ceil()
	origin := image.Pt(b.Min.X+c.Margin, b.Min.Y+c.Margin)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, m.Height.Ceil()))}.Intersect(b)
}

func (c *Captioner) Close() error {
	return c.face.Close()
}
