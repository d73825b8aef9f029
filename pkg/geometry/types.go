// Package geometry provides basic geometric types used throughout the
// application.
package geometry

import "image"

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToImagePoint converts to the standard library point type.
func (p PointInt) ToImagePoint() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// RectInt represents a rectangle with integer pixel coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToImageRect converts to the standard library rectangle type.
func (r RectInt) ToImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the rectangle has no area.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamp restricts the rectangle to the given bounds, shrinking it where it
// overhangs.
func (r RectInt) Clamp(bounds RectInt) RectInt {
	clamped := r.ToImageRect().Intersect(bounds.ToImageRect())
	return RectInt{
		X:      clamped.Min.X,
		Y:      clamped.Min.Y,
		Width:  clamped.Dx(),
		Height: clamped.Dy(),
	}
}
