package component

import "image/color"

// Visual is a flat-coloured placeholder shape drawn by the render system.
type Visual struct {
	Color  color.RGBA
	Width  float64
	Height float64
	Radius float64
	Layer  int
	Hidden bool
}

var VisualComponent = NewComponent[Visual]()
