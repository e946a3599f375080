package draw

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	got := Hex("#ff77ff")
	want := color.NRGBA{R: 255, G: 0x77, B: 255, A: 255}
	if got != want {
		t.Errorf("Hex = %v, want %v", got, want)
	}
	if got := Hex("not a colour"); got != invalidColor {
		t.Errorf("expected invalid colour marker, got %v", got)
	}
}

func TestOver(t *testing.T) {
	dst := Hex("#000000")
	if got := Over(dst, White); got != White {
		t.Errorf("opaque source should replace dst, got %v", got)
	}
	if got := Over(dst, WithAlpha(White, 0)); got != dst {
		t.Errorf("transparent source should keep dst, got %v", got)
	}
	half := Over(dst, WithAlpha(White, 0.5))
	if half.R < 125 || half.R > 130 {
		t.Errorf("expected mid grey, got %v", half)
	}
}

func TestLerp(t *testing.T) {
	a := Hex("#000000")
	b := Hex("#ffffff")
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	mid := Lerp(a, b, 0.5)
	if mid.G < 125 || mid.G > 130 {
		t.Errorf("Lerp(0.5) = %v", mid)
	}
}

func TestWithAlphaClamps(t *testing.T) {
	if got := WithAlpha(White, 2).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
	if got := WithAlpha(White, -1).A; got != 0 {
		t.Errorf("alpha = %d, want 0", got)
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(Hex("#ff77ff")); got != "#ff77ff" {
		t.Errorf("Expected #ff77ff, got %s", got)
	}
	if got := ToHex(WithAlpha(Hex("#00ff00"), 0.1)); got != "#00ff00" {
		t.Errorf("Expected alpha to be ignored, got %s", got)
	}
}
