package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// cell is the pair of sub-pixels shown by one terminal character.
type cell struct {
	top, bottom color.NRGBA
}

// label is text queued for drawing on top of the pixels.
type label struct {
	x, y   float64
	text   string
	fg, bg color.NRGBA
}

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical coordinates to terminal pixels and only re-emits cells that
// changed since the previous Render.
type Canvas struct {
	termWidth      int           // Canvas columns
	termHeight     int           // Canvas rows
	subPixelHeight int           // termHeight * 2
	pixels         []color.NRGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset of the canvas inside the terminal (0-based columns/rows to skip).
	offsetCol int
	offsetRow int

	// Last rendered frame, used to skip unchanged cells.
	prev      []cell
	prevValid []bool

	labels      []label
	borderDirty bool

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the canvas dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		subPixelHeight := termHeight * 2
		c.pixels = make([]color.NRGBA, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.prevValid = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.borderDirty = true
	}

	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset of the canvas inside the terminal.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.prevValid)
	c.borderDirty = true
}

// Clear resets all pixels to black and drops queued labels.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = Black
	}
	c.labels = c.labels[:0]
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.NRGBA) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	if col.A == 255 {
		c.pixels[i] = col
		return
	}
	c.pixels[i] = Over(c.pixels[i], col)
}

// Pixel returns the colour of the pixel at terminal coordinates.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.NRGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// VerticalGradient fills every pixel row with a colour interpolated from top to bottom.
func (c *Canvas) VerticalGradient(top, bottom color.NRGBA) {
	last := float64(c.subPixelHeight - 1)
	for y := 0; y < c.subPixelHeight; y++ {
		t := 0.0
		if last > 0 {
			t = float64(y) / last
		}
		col := Lerp(top, bottom, t)
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := range row {
			row[x] = col
		}
	}
}

// FillRect fills a rectangle given in logical coordinates. Anything inside the
// canvas covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillCircle fills the pixels whose centres lie inside the circle.
// Circles smaller than a pixel still light the pixel under their centre.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	x0 := int(math.Floor(pcx - rx))
	x1 := int(math.Ceil(pcx + rx))
	y0 := int(math.Floor(pcy - ry))
	y1 := int(math.Ceil(pcy + ry))

	drawn := false
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, col)
				drawn = true
			}
		}
	}
	if !drawn {
		c.setPixel(int(math.Floor(pcx)), int(math.Floor(pcy)), col)
	}
}

// Line draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(p1, p2 Point, col color.NRGBA) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon and draws its outline so thin shapes stay visible.
func (c *Canvas) FillPolygon(points []Point, col color.NRGBA) {
	if len(points) < 3 {
		return
	}

	c.fillPolygon(points, col)

	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col color.NRGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Label queues text centred on a logical position. Labels are drawn after the pixels.
func (c *Canvas) Label(x, y float64, text string, fg, bg color.NRGBA) {
	if text == "" {
		return
	}
	c.labels = append(c.labels, label{x: x, y: y, text: text, fg: fg, bg: bg})
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row),
// not including the canvas offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// Render writes the changed cells, then the labels, to w.
func (c *Canvas) Render(w io.Writer) error {
	b := &c.renderBuf
	b.Reset()

	var curFg, curBg color.NRGBA
	haveColor := false
	nextCol, nextRow := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			i := row*c.termWidth + col
			if c.prevValid[i] && c.prev[i] == cur {
				continue
			}
			c.prev[i] = cur
			c.prevValid[i] = true

			if col != nextCol || row != nextRow {
				c.moveCursor(col+1, row+1)
			}
			if !haveColor || cur.top != curFg {
				c.writeColor(38, cur.top)
				curFg = cur.top
			}
			if !haveColor || cur.bottom != curBg {
				c.writeColor(48, cur.bottom)
				curBg = cur.bottom
			}
			haveColor = true

			b.WriteRune(BlockUpperHalf)
			nextCol, nextRow = col+1, row
		}
	}

	c.renderLabels()

	if b.Len() == 0 {
		return nil
	}
	b.WriteString(resetSGR)
	_, err := io.WriteString(w, b.String())
	return err
}

// renderLabels draws queued labels and invalidates the cells under them, so the
// pixels get restored once the label moves away.
func (c *Canvas) renderLabels() {
	b := &c.renderBuf
	for _, l := range c.labels {
		col, row := c.LogicalToTerminal(l.x, l.y)
		n := utf8.RuneCountInString(l.text)
		col -= n / 2
		if row < 1 || row > c.termHeight {
			continue
		}

		text := l.text
		if col < 1 {
			skip := 1 - col
			if skip >= n {
				continue
			}
			text = string([]rune(text)[skip:])
			n -= skip
			col = 1
		}
		if col+n-1 > c.termWidth {
			keep := c.termWidth - col + 1
			if keep <= 0 {
				continue
			}
			text = string([]rune(text)[:keep])
			n = keep
		}

		c.moveCursor(col, row)
		c.writeColor(38, l.fg)
		c.writeColor(48, l.bg)
		b.WriteString(text)

		start := (row-1)*c.termWidth + col - 1
		for i := start; i < start+n; i++ {
			c.prevValid[i] = false
		}
	}
}

// moveCursor appends a cursor move to a 1-based canvas position, applying the offset.
func (c *Canvas) moveCursor(col, row int) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+c.offsetCol), 10))
	b.WriteByte('H')
}

// writeColor appends a truecolor SGR sequence; code is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(code int, col color.NRGBA) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(code), 10))
	b.WriteString(";2;")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	b.WriteByte('m')
}

// RenderBorder draws a box around the canvas when there is room for it in the
// offset area. It only writes after a resize or ForceRedraw.
func (c *Canvas) RenderBorder(w io.Writer, col color.NRGBA) error {
	if !c.borderDirty {
		return nil
	}
	c.borderDirty = false
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.WriteString(fgSGR(col))
	horizontal := strings.Repeat("─", c.termWidth)
	buf.WriteString(cursorTo(left, top) + "┌" + horizontal + "┐")
	buf.WriteString(cursorTo(left, bottom) + "└" + horizontal + "┘")
	for row := top + 1; row < bottom; row++ {
		buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
	}
	buf.WriteString(resetSGR)

	_, err := io.WriteString(w, buf.String())
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
