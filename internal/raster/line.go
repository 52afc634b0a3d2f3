package raster

import (
	"math"

	"mini-raster/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMinSegment is the length below which DrawLine stops subdividing.
const DefaultMinSegment = float32(2)

// Target is a pixel sink with known bounds. *graphics.FrameBuffer
// implements it.
type Target interface {
	Width() int
	Height() int
	PutPixel(x, y int, c graphics.Color)
}

// Plotter draws clipped points and lines of a single color into a Target.
type Plotter struct {
	target     Target
	color      graphics.Color
	minSegment float32
	plotted    int
}

// NewPlotter returns a plotter for target. minSegment must be positive and
// finite; anything else falls back to DefaultMinSegment.
func NewPlotter(target Target, color graphics.Color, minSegment float32) *Plotter {
	if !(minSegment > 0) || math.IsInf(float64(minSegment), 0) {
		minSegment = DefaultMinSegment
	}
	return &Plotter{target: target, color: color, minSegment: minSegment}
}

// Plotted reports how many pixels have been written since the last Reset.
func (p *Plotter) Plotted() int { return p.plotted }

// Reset zeroes the plotted counter.
func (p *Plotter) Reset() { p.plotted = 0 }

// DrawPoint writes pt if it falls inside [0,width) x [0,height) and reports
// whether it did. Non-finite coordinates never pass the test.
func (p *Plotter) DrawPoint(pt mgl32.Vec2) bool {
	x, y := pt.X(), pt.Y()
	if !(x >= 0 && y >= 0 && x < float32(p.target.Width()) && y < float32(p.target.Height())) {
		return false
	}
	p.target.PutPixel(int(x), int(y), p.color)
	p.plotted++
	return true
}

// DrawLine plots the midpoint of p1-p2 and recurses into both halves until
// a half is shorter than the minimum segment. Segments that start shorter
// than that draw nothing, endpoints are never plotted by DrawLine itself,
// and non-finite input is a no-op.
func (p *Plotter) DrawLine(p1, p2 mgl32.Vec2) {
	if !finite(p1) || !finite(p2) {
		return
	}
	p.drawLine(p1, p2)
}

func (p *Plotter) drawLine(p1, p2 mgl32.Vec2) {
	d := p2.Sub(p1).Len()
	// d overflows to +Inf for far-apart finite points
	if !(d >= p.minSegment) || math.IsInf(float64(d), 0) {
		return
	}
	if p.outside(p1, p2) {
		return
	}

	m := p1.Add(p2.Sub(p1).Mul(0.5))
	// no representable point strictly between p1 and p2
	if m == p1 || m == p2 {
		return
	}

	p.DrawPoint(m)
	p.drawLine(p1, m)
	p.drawLine(m, p2)
}

// outside reports whether both endpoints lie beyond the same edge of the
// target. Every midpoint of such a segment is beyond that edge too.
func (p *Plotter) outside(p1, p2 mgl32.Vec2) bool {
	w, h := float32(p.target.Width()), float32(p.target.Height())
	switch {
	case p1.X() < 0 && p2.X() < 0:
		return true
	case p1.Y() < 0 && p2.Y() < 0:
		return true
	case p1.X() >= w && p2.X() >= w:
		return true
	case p1.Y() >= h && p2.Y() >= h:
		return true
	}
	return false
}

func finite(v mgl32.Vec2) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
