package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/nightmare/internal/draw"
)

// whiteSubImage is the source texture for DrawTriangles fills.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws onto an ebiten image whose pixels are logical units.
type Surface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

func (s *Surface) LogicalWidth() float64 {
	return float64(s.dst.Bounds().Dx())
}

func (s *Surface) LogicalHeight() float64 {
	return float64(s.dst.Bounds().Dy())
}

// VerticalGradient fills the image with a quad whose vertex colours blend top to bottom.
func (s *Surface) VerticalGradient(top, bottom color.NRGBA) {
	w, h := float32(s.LogicalWidth()), float32(s.LogicalHeight())
	s.vertices = append(s.vertices[:0],
		vertex(0, 0, top), vertex(w, 0, top),
		vertex(0, h, bottom), vertex(w, h, bottom),
	)
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 3, 2)
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) FillPolygon(points []draw.Point, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		setVertexColor(&s.vertices[i], c)
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Surface) Line(p1, p2 draw.Point, c color.NRGBA) {
	vector.StrokeLine(s.dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, c, false)
}

// Label draws text centred on (x, y). The background is left to whatever is
// underneath, which for enemies is their own square.
func (s *Surface) Label(x, y float64, str string, fg, _ color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fg)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, fontFace, op)
}

func vertex(x, y float32, c color.NRGBA) ebiten.Vertex {
	v := ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1}
	setVertexColor(&v, c)
	return v
}

// setVertexColor stores c as premultiplied floats.
func setVertexColor(v *ebiten.Vertex, c color.NRGBA) {
	a := float32(c.A) / 255
	v.ColorR = float32(c.R) / 255 * a
	v.ColorG = float32(c.G) / 255 * a
	v.ColorB = float32(c.B) / 255 * a
	v.ColorA = a
}
