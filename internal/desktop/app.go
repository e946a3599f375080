// Package desktop runs the game in an Ebiten window.
package desktop

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/nightmare/internal/loop"
)

// Window layout in pixels: the playfield at 1:1 with the side panel to its right.
const (
	panelWidth   = 220
	WindowWidth  = int(loop.FieldWidth) + panelWidth
	WindowHeight = int(loop.FieldHeight)
)

// App adapts a loop.Game to ebiten.Game.
type App struct {
	game    *loop.Game
	field   *ebiten.Image
	surface *Surface
	keys    keyboard
	err     error // Set by Draw, reported by the next Update
}

// New creates the app for a fresh game.
func New(opts loop.GameOptions) *App {
	field := ebiten.NewImage(int(loop.FieldWidth), int(loop.FieldHeight))
	return &App{
		game:    loop.NewGame(opts),
		field:   field,
		surface: NewSurface(field),
	}
}

// Update advances one tick. Ebiten runs ticks at a fixed rate.
func (a *App) Update() error {
	if a.err != nil {
		return a.err
	}

	in := a.keys.read()
	delta := time.Second / time.Duration(ebiten.TPS())
	if err := a.game.Update(in, delta); err != nil {
		return err
	}
	if a.game.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the playfield and the UI for the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorPanelBG)

	a.field.Clear()
	if err := a.game.Draw(a.surface); err != nil {
		a.err = err
		return
	}
	screen.DrawImage(a.field, &ebiten.DrawImageOptions{})

	v := a.game.View()
	switch v.Screen {
	case loop.ScreenMenu:
		drawMenu(screen, v)
	case loop.ScreenInstructions:
		drawInstructions(screen)
	case loop.ScreenSettings:
		drawSettings(screen, v)
	case loop.ScreenPlaying:
		drawPanel(screen, v)
	case loop.ScreenGameOver:
		drawPanel(screen, v)
		drawGameOver(screen, v)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return WindowWidth, WindowHeight
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts loop.GameOptions) error {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(loop.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Settings.FPS > 0 {
		ebiten.SetTPS(opts.Settings.FPS)
	}

	err := ebiten.RunGame(New(opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
