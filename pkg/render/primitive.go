package render

import "image/color"

type Point struct {
	X float64
	Y float64
}

// Primitive is a drawing instruction for a rendering backend: Line or
// FilledRect.
type Primitive interface {
	isPrimitive()
}

type Line struct {
	From  Point
	To    Point
	Color color.RGBA
	Width float64
}

type FilledRect struct {
	Origin Point
	Width  float64
	Height float64
	Color  color.RGBA
}

func (Line) isPrimitive()       {}
func (FilledRect) isPrimitive() {}
