package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/loop"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const lineHeight = 18

var (
	colorPanelBG = draw.Hex("#111827")
	colorAccent  = draw.Hex("#c084fc")
	colorText    = draw.Hex("#e5e7eb")
	colorDim     = draw.Hex("#6b7280")
	colorSelect  = draw.Hex("#ff77ff")
	colorScore   = draw.Hex("#4ade80")
	colorHeart   = draw.Hex("#ef4444")
	colorShade   = draw.WithAlpha(draw.Black, 0.6)
)

// line is one row of text in a box.
type line struct {
	text  string
	color color.NRGBA
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.NRGBA, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, fontFace, op)
}

// drawBox shades the window and draws lines in a framed box at its centre.
func drawBox(dst *ebiten.Image, lines []line) {
	bounds := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), colorShade, false)

	width := 0.0
	for _, l := range lines {
		w, _ := text.Measure(l.text, fontFace, lineHeight)
		width = max(width, w)
	}
	boxW := width + 40
	boxH := float64(len(lines)*lineHeight) + 30
	x := (float64(bounds.Dx()) - boxW) / 2
	y := (float64(bounds.Dy()) - boxH) / 2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), colorPanelBG, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), 2, colorAccent, false)

	for i, l := range lines {
		drawText(dst, l.text, x+20, y+15+float64(i*lineHeight), l.color, text.AlignStart)
	}
}

func drawMenu(dst *ebiten.Image, v loop.View) {
	lines := []line{
		{loop.Title, colorAccent},
		{"a bullet-hell arcade game", colorDim},
		{"", colorText},
	}
	for i, item := range loop.MenuItems {
		if i == v.MenuIndex {
			lines = append(lines, line{"> " + item.String(), colorSelect})
		} else {
			lines = append(lines, line{"  " + item.String(), colorText})
		}
	}
	lines = append(lines,
		line{"", colorText},
		line{"Up/Down select  Enter confirm  Q quit", colorDim},
	)
	drawBox(dst, lines)
}

func drawInstructions(dst *ebiten.Image) {
	lines := []line{
		{"Instructions", colorAccent},
		{"", colorText},
		{"Controls", colorText},
	}
	for _, c := range loop.Controls {
		lines = append(lines, line{fmt.Sprintf("  %-14s %s", c.Keys, c.Action), colorText})
	}
	lines = append(lines, line{"", colorText}, line{"Enemies", colorText})
	for _, e := range loop.Enemies {
		lines = append(lines, line{fmt.Sprintf("  %-3s %s", e.Kind.Label, e.Description), e.Kind.Color})
	}
	lines = append(lines, line{"", colorText}, line{"Esc back", colorDim})
	drawBox(dst, lines)
}

func drawSettings(dst *ebiten.Image, v loop.View) {
	mute := "[ ]"
	if v.Muted {
		mute = "[x]"
	}
	rows := []struct {
		row   loop.SettingsRow
		label string
	}{
		{loop.SettingsVolume, fmt.Sprintf("Music volume  < %3d%% >", v.Volume)},
		{loop.SettingsMute, "Mute          " + mute},
		{loop.SettingsBack, "Back"},
	}

	lines := []line{{"Settings", colorAccent}, {"", colorText}}
	for _, r := range rows {
		if r.row == v.SettingsRow {
			lines = append(lines, line{"> " + r.label, colorSelect})
		} else {
			lines = append(lines, line{"  " + r.label, colorText})
		}
	}
	lines = append(lines, line{"", colorText}, line{"Left/Right volume  M mute  Esc back", colorDim})
	drawBox(dst, lines)
}

// drawPanel draws score, lives and audio state to the right of the playfield.
func drawPanel(dst *ebiten.Image, v loop.View) {
	x := loop.FieldWidth + 16
	y := 16.0

	drawText(dst, "Touhou:", x, y, colorAccent, text.AlignStart)
	y += lineHeight
	drawText(dst, "Infinite Nightmare", x, y, colorAccent, text.AlignStart)
	y += lineHeight
	drawText(dst, "of Computer Science", x, y, colorAccent, text.AlignStart)
	y += 2 * lineHeight

	drawText(dst, "Score", x, y, colorText, text.AlignStart)
	y += lineHeight
	drawText(dst, fmt.Sprintf("%d", v.Score), x, y, colorScore, text.AlignStart)
	y += 2 * lineHeight

	drawText(dst, "Lives", x, y, colorText, text.AlignStart)
	y += lineHeight + 8
	for i := 0; i < v.MaxLives; i++ {
		c := colorDim
		if i < v.Lives {
			c = colorHeart
		}
		drawHeart(dst, x+8+float64(i)*24, y, c)
	}
	y += 2 * lineHeight

	drawText(dst, "Audio", x, y, colorText, text.AlignStart)
	y += lineHeight
	if v.Muted {
		drawText(dst, "muted", x, y, colorDim, text.AlignStart)
	} else {
		drawText(dst, fmt.Sprintf("volume %d%%", v.Volume), x, y, colorText, text.AlignStart)
		y += lineHeight
		vector.DrawFilledRect(dst, float32(x), float32(y), 150, 8, colorDim, false)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(150*v.Volume/100), 8, colorScore, false)
	}
	y += 2 * lineHeight

	for _, hint := range []string{"Z fire", "M mute", "+/- volume", "Esc menu"} {
		drawText(dst, hint, x, y, colorDim, text.AlignStart)
		y += lineHeight
	}
}

// drawHeart draws a small heart centred on (cx, cy).
func drawHeart(dst *ebiten.Image, cx, cy float64, c color.NRGBA) {
	s := NewSurface(dst)
	s.FillCircle(cx-4, cy-3, 5, c)
	s.FillCircle(cx+4, cy-3, 5, c)
	s.FillPolygon([]draw.Point{{X: cx - 9, Y: cy - 1}, {X: cx + 9, Y: cy - 1}, {X: cx, Y: cy + 9}}, c)
}

func drawGameOver(dst *ebiten.Image, v loop.View) {
	drawBox(dst, []line{
		{"Game Over", colorAccent},
		{"", colorText},
		{fmt.Sprintf("Final score: %d", v.Score), colorScore},
		{"", colorText},
		{"R / Enter   retry", colorText},
		{"Esc         main menu", colorText},
	})
}
