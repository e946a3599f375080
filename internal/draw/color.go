package draw

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Black and White are used for labels and player shots.
var (
	Black = color.NRGBA{A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// invalidColor marks a hex string that failed to parse.
var invalidColor = color.NRGBA{R: 255, B: 255, A: 255}

// Hex parses a "#rrggbb" colour. Invalid input yields magenta.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return invalidColor
	}
	return fromColorful(c, 255)
}

// WithAlpha returns c with its alpha set to a (0..1).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Over composites src on top of an opaque dst using src's alpha.
// The result is opaque.
func Over(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		dst.A = 255
		return dst
	}
	a := float64(src.A) / 255
	return fromColorful(toColorful(dst).BlendRgb(toColorful(src), a), 255)
}

// Lerp interpolates between two opaque colours in RGB space, t in [0,1].
func Lerp(from, to color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return fromColorful(toColorful(from).BlendRgb(toColorful(to), t), 255)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// ToHex formats c as "#rrggbb", ignoring alpha.
func ToHex(c color.NRGBA) string {
	return toColorful(c).Hex()
}
