package loop

import (
	"image/color"

	"github.com/tomz197/nightmare/internal/draw"
)

// eps absorbs the rounding of a 1/60 s delta to whole nanoseconds.
const eps = 1e-4

// countingSurface is a draw.Surface that counts calls.
type countingSurface struct {
	gradients, rects, circles, polygons, lines, labels int
}

func (s *countingSurface) LogicalWidth() float64                      { return FieldWidth }
func (s *countingSurface) LogicalHeight() float64                     { return FieldHeight }
func (s *countingSurface) VerticalGradient(_, _ color.NRGBA)          { s.gradients++ }
func (s *countingSurface) FillRect(_, _, _, _ float64, _ color.NRGBA) { s.rects++ }
func (s *countingSurface) FillCircle(_, _, _ float64, _ color.NRGBA)  { s.circles++ }
func (s *countingSurface) FillPolygon(_ []draw.Point, _ color.NRGBA)  { s.polygons++ }
func (s *countingSurface) Line(_, _ draw.Point, _ color.NRGBA)        { s.lines++ }
func (s *countingSurface) Label(_, _ float64, _ string, _, _ color.NRGBA) {
	s.labels++
}
