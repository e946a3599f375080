package object

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
)

const frame = time.Second / referenceFPS

var testField = Field{Width: 500, Height: 700}

// collector is a Spawner that records what it is given.
type collector struct {
	objects []Object
}

func (c *collector) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

func (c *collector) bullets() []*Bullet {
	var out []*Bullet
	for _, obj := range c.objects {
		if b, ok := obj.(*Bullet); ok {
			out = append(out, b)
		}
	}
	return out
}

func (c *collector) enemies() []*Enemy {
	var out []*Enemy
	for _, obj := range c.objects {
		if e, ok := obj.(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// recorder is a Surface that counts draw calls.
type recorder struct {
	rects, circles, polygons, lines, labels, gradients int
	lastLabel                                          string
	lastColor                                          color.NRGBA
}

func (r *recorder) LogicalWidth() float64  { return 500 }
func (r *recorder) LogicalHeight() float64 { return 700 }
func (r *recorder) VerticalGradient(_, _ color.NRGBA) {
	r.gradients++
}
func (r *recorder) FillRect(_, _, _, _ float64, c color.NRGBA) {
	r.rects++
	r.lastColor = c
}
func (r *recorder) FillCircle(_, _, _ float64, c color.NRGBA) {
	r.circles++
	r.lastColor = c
}
func (r *recorder) FillPolygon(_ []draw.Point, c color.NRGBA) {
	r.polygons++
	r.lastColor = c
}
func (r *recorder) Line(_, _ draw.Point, _ color.NRGBA) {
	r.lines++
}
func (r *recorder) Label(_, _ float64, text string, _, _ color.NRGBA) {
	r.labels++
	r.lastLabel = text
}

func updateCtx(now time.Duration, in Input, spawner Spawner) UpdateContext {
	return UpdateContext{
		Delta:   frame,
		Now:     now,
		Input:   in,
		Field:   testField,
		Spawner: spawner,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

func TestFramesScalesWithDelta(t *testing.T) {
	ctx := UpdateContext{Delta: 2 * frame}
	if got := ctx.Frames(); got < 1.999 || got > 2.001 {
		t.Errorf("Expected 2 reference frames, got %f", got)
	}
}

func TestShouldRenderBlink(t *testing.T) {
	tests := []struct {
		now  time.Duration
		want bool
	}{
		{0, false},
		{99 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{250 * time.Millisecond, false},
		{350 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := ShouldRenderBlink(tt.now, 100*time.Millisecond); got != tt.want {
			t.Errorf("ShouldRenderBlink(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestBackgroundDrawsGradientAndGrid(t *testing.T) {
	r := &recorder{}
	if err := (Background{}).Draw(DrawContext{Surface: r}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if r.gradients != 1 {
		t.Errorf("Expected one gradient, got %d", r.gradients)
	}
	// 500/40 -> 13 vertical lines, 700/40 -> 18 horizontal lines
	if r.lines != 13+18 {
		t.Errorf("Expected 31 grid lines, got %d", r.lines)
	}
}

// eps absorbs the rounding of a 1/60 s delta to whole nanoseconds.
const eps = 1e-4
