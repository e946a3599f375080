// Package loop provides the game state machine, the world simulation and the
// terminal frame loop that drives them.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/nightmare/internal/audio"
	"github.com/tomz197/nightmare/internal/config"
	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/input"
)

// borderColor frames the playfield.
var borderColor = draw.Hex("#6b21a8")

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // nil uses the process's stdout
	Settings     config.Settings
	Audio        audio.Player
	Logger       *log.Logger
}

// terminal holds the output side of one terminal session.
type terminal struct {
	out      *draw.ChunkWriter
	canvas   *draw.Canvas
	screens  *screens
	sizeFunc draw.TermSizeFunc

	layout     layout
	lastScreen Screen
	lastUI     string // Last UI block written, to skip identical frames
	dirty      bool   // Terminal must be cleared and fully repainted
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	settings := opts.Settings
	settings.Clamp()

	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	game := NewGame(GameOptions{
		Settings: settings,
		Audio:    opts.Audio,
		Logger:   opts.Logger,
	})
	// Stops the input reader once Run returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stream := input.StartStream(ctx, r)

	term := &terminal{
		out:        draw.NewChunkWriter(w, 0, 0),
		canvas:     draw.NewScaledCanvas(1, 1, FieldWidth, FieldHeight),
		screens:    newScreens(w),
		sizeFunc:   sizeFunc,
		lastScreen: game.Screen(),
		dirty:      true,
	}

	draw.EnterAltScreen(w)
	draw.HideCursor(w)
	defer func() {
		draw.ShowCursor(w)
		draw.ExitAltScreen(w)
	}()

	frameTime := time.Second / time.Duration(settings.FPS)
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Closed {
			return nil
		}

		// ===== UPDATE PHASE =====
		if err := game.Update(in, delta); err != nil {
			return err
		}
		if game.Quit() {
			return nil
		}
		if game.Screen() != term.lastScreen {
			// Held keys must not leak into the next screen
			stream.Reset()
			term.lastScreen = game.Screen()
			term.dirty = true
		}

		// ===== DRAW PHASE =====
		if err := term.drawFrame(game); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(frameTime - elapsed):
			}
		}
	}
}

// updateLayout reads the terminal size and refits the canvas.
func (t *terminal) updateLayout() {
	width, height, err := t.sizeFunc()
	if err != nil {
		return
	}
	l := computeLayout(width, height)
	if l != t.layout {
		t.layout = l
		t.dirty = true
	}
	if l.ok {
		t.canvas.Resize(l.fieldCols, l.fieldRows)
		t.canvas.SetOffset(l.offsetCol, l.offsetRow)
	}
}

// drawFrame writes whatever changed since the previous frame.
func (t *terminal) drawFrame(g *Game) error {
	t.updateLayout()

	if t.dirty {
		draw.ClearScreen(t.out)
		t.canvas.ForceRedraw()
		t.lastUI = ""
	}
	repaint := t.dirty
	t.dirty = false

	l := t.layout
	if !l.ok {
		t.writeUI(1, 1, t.screens.TooSmall(l.termWidth, l.termHeight))
		return t.out.Flush()
	}

	v := g.View()
	switch v.Screen {
	case ScreenMenu:
		t.writeCentered(t.screens.Menu(v))
	case ScreenInstructions:
		t.writeCentered(t.screens.Instructions())
	case ScreenSettings:
		t.writeCentered(t.screens.Settings(v))
	case ScreenPlaying:
		if err := t.drawField(g); err != nil {
			return err
		}
		t.writeUI(l.panelCol, l.offsetRow, t.screens.Panel(v, l.fieldRows+2))
	case ScreenGameOver:
		// The world is frozen, so the field only needs painting once.
		if repaint {
			if err := t.drawField(g); err != nil {
				return err
			}
			t.out.WriteLines(l.panelCol, l.offsetRow, t.screens.Panel(v, l.fieldRows+2))
			t.writeOverField(t.screens.GameOver(v))
		}
	}

	return t.out.Flush()
}

// drawField paints the playfield onto the canvas and renders the changed cells.
func (t *terminal) drawField(g *Game) error {
	t.canvas.Clear()
	if err := g.Draw(t.canvas); err != nil {
		return err
	}
	if err := t.canvas.RenderBorder(t.out, borderColor); err != nil {
		return err
	}
	return t.canvas.Render(t.out)
}

// writeUI writes block at (col, row) unless it is identical to the last one.
func (t *terminal) writeUI(col, row int, block string) {
	if block == t.lastUI {
		return
	}
	t.lastUI = block
	t.out.WriteLines(col, row, block)
}

// writeCentered writes block in the middle of the terminal.
func (t *terminal) writeCentered(block string) {
	if block != t.lastUI && t.lastUI != "" {
		// The previous block may be larger; wipe it.
		draw.ClearScreen(t.out)
	}
	l := t.layout
	col := (l.termWidth-lipgloss.Width(block))/2 + 1
	row := (l.termHeight-lipgloss.Height(block))/2 + 1
	t.writeUI(max(col, 1), max(row, 1), block)
}

// writeOverField writes block in the middle of the playfield.
func (t *terminal) writeOverField(block string) {
	l := t.layout
	col := l.offsetCol + 1 + (l.fieldCols-lipgloss.Width(block))/2
	row := l.offsetRow + 1 + (l.fieldRows-lipgloss.Height(block))/2
	t.out.WriteLines(max(col, 1), max(row, 1), block)
}
