// Package geometry provides basic integer geometric types used throughout the application.
package geometry

import "image"

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointInt creates a new PointInt.
func NewPointInt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}

// Add returns the sum of two points.
func (p PointInt) Add(other PointInt) PointInt {
	return PointInt{X: p.X + other.X, Y: p.Y + other.Y}
}

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRectInt creates a new RectInt.
func NewRectInt(x, y, width, height int) RectInt {
	return RectInt{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point is inside the rectangle.
func (r RectInt) Contains(p PointInt) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Right returns the x coordinate one past the right edge.
func (r RectInt) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r RectInt) Bottom() int {
	return r.Y + r.Height
}

// ToImageRect converts to a standard library image.Rectangle.
func (r RectInt) ToImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
