package model

import "fmt"

// Point is a position in virtual-desktop pixels.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is a rectangle in virtual-desktop pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the rectangle dimensions.
func (rect Rect) Size() Size {
	return Size{Width: rect.Width, Height: rect.Height}
}

// Center returns the rectangle midpoint, rounded toward the top-left.
func (rect Rect) Center() Point {
	return Point{X: rect.X + rect.Width/2, Y: rect.Y + rect.Height/2}
}

// At returns a rectangle of the same size with its top-left at point.
func (rect Rect) At(point Point) Rect {
	return Rect{X: point.X, Y: point.Y, Width: rect.Width, Height: rect.Height}
}

func (rect Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", rect.Width, rect.Height, rect.X, rect.Y)
}

// Display is a monitor as reported by the OS.
type Display struct {
	Name        string
	Bounds      Rect
	WorkingArea Rect
	IsPrimary   bool
}
