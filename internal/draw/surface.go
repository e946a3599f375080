// Package draw provides the drawing surface used by game objects and its
// terminal implementation.
package draw

import "image/color"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Surface is a 2D drawing target addressed in logical playfield units.
// Colours with alpha below 255 are blended over what is already drawn.
type Surface interface {
	// LogicalWidth and LogicalHeight return the size of the coordinate space.
	LogicalWidth() float64
	LogicalHeight() float64

	// VerticalGradient fills the whole surface, top colour to bottom colour.
	VerticalGradient(top, bottom color.NRGBA)
	// FillRect fills the rectangle with top-left corner (x, y).
	FillRect(x, y, w, h float64, c color.NRGBA)
	// FillCircle fills a circle centred on (cx, cy).
	FillCircle(cx, cy, r float64, c color.NRGBA)
	// FillPolygon fills a closed polygon.
	FillPolygon(points []Point, c color.NRGBA)
	// Line draws a one pixel wide line.
	Line(p1, p2 Point, c color.NRGBA)
	// Label draws text centred on (x, y).
	Label(x, y float64, text string, fg, bg color.NRGBA)
}
