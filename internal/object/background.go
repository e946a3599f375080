package object

import "github.com/tomz197/nightmare/internal/draw"

// Background colours and grid spacing.
var (
	BackgroundTop    = draw.Hex("#000033")
	BackgroundBottom = draw.Hex("#000022")
	GridColor        = draw.WithAlpha(draw.Hex("#00ff00"), 0.1)
)

// GridSpacing is the distance between grid lines.
const GridSpacing = 40.0

// Background paints the gradient and grid behind everything else.
type Background struct{}

// Update does nothing; the background is static.
func (Background) Update(_ UpdateContext) (bool, error) {
	return false, nil
}

// Draw fills the surface and overlays the grid.
func (Background) Draw(ctx DrawContext) error {
	s := ctx.Surface
	w, h := s.LogicalWidth(), s.LogicalHeight()

	s.VerticalGradient(BackgroundTop, BackgroundBottom)
	for x := 0.0; x < w; x += GridSpacing {
		s.Line(draw.Point{X: x, Y: 0}, draw.Point{X: x, Y: h}, GridColor)
	}
	for y := 0.0; y < h; y += GridSpacing {
		s.Line(draw.Point{X: 0, Y: y}, draw.Point{X: w, Y: y}, GridColor)
	}
	return nil
}
