package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/nightmare/internal/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:        input.KeyUp,
	ebiten.KeyW:              input.KeyUp,
	ebiten.KeyArrowDown:      input.KeyDown,
	ebiten.KeyS:              input.KeyDown,
	ebiten.KeyArrowLeft:      input.KeyLeft,
	ebiten.KeyA:              input.KeyLeft,
	ebiten.KeyArrowRight:     input.KeyRight,
	ebiten.KeyD:              input.KeyRight,
	ebiten.KeyEnter:          input.KeyEnter,
	ebiten.KeySpace:          input.KeyEnter,
	ebiten.KeyEscape:         input.KeyEscape,
	ebiten.KeyZ:              input.KeyFire,
	ebiten.KeyM:              input.KeyMute,
	ebiten.KeyEqual:          input.KeyVolumeUp,
	ebiten.KeyNumpadAdd:      input.KeyVolumeUp,
	ebiten.KeyMinus:          input.KeyVolumeDown,
	ebiten.KeyNumpadSubtract: input.KeyVolumeDown,
	ebiten.KeyR:              input.KeyRetry,
	ebiten.KeyQ:              input.KeyQuit,
}

// keyboard turns ebiten's keyboard state into the frame's Input.
// Unlike a terminal, ebiten reports real key releases, so held state is exact.
type keyboard struct {
	pressed []ebiten.Key
}

func (k *keyboard) read() input.Input {
	in := input.Input{
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyZ),
	}

	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		if mapped, ok := keyMap[key]; ok {
			in.Keys = append(in.Keys, mapped)
		}
	}
	return in
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
