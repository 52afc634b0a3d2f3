// Package raster turns projected geometry into pixels: vertex projection,
// clipped point plotting and midpoint-subdivision line drawing.
package raster

import "github.com/go-gl/mathgl/mgl32"

// Project maps a mesh-local point through transform into pixel coordinates
// of a width x height target. The result is neither rounded nor clipped.
func Project(point mgl32.Vec3, transform mgl32.Mat4, width, height int) mgl32.Vec2 {
	ndc := mgl32.TransformCoordinate(point, transform)

	w, h := float32(width), float32(height)
	return mgl32.Vec2{
		ndc.X()*w + w/2,
		ndc.Y()*h + h/2,
	}
}

// ProjectAll projects every point into dst, growing it as needed, and
// returns the filled slice.
func ProjectAll(dst []mgl32.Vec2, points []mgl32.Vec3, transform mgl32.Mat4, width, height int) []mgl32.Vec2 {
	dst = dst[:0]
	for _, p := range points {
		dst = append(dst, Project(p, transform, width, height))
	}
	return dst
}
