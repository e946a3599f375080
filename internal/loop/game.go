package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nightmare/internal/audio"
	"github.com/tomz197/nightmare/internal/config"
	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/input"
	"github.com/tomz197/nightmare/internal/object"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuInstructions
	MenuSettings
	MenuQuit
)

// MenuItems lists the main menu in display order.
var MenuItems = []MenuItem{MenuPlay, MenuInstructions, MenuSettings, MenuQuit}

func (m MenuItem) String() string {
	switch m {
	case MenuPlay:
		return "Play"
	case MenuInstructions:
		return "Instructions"
	case MenuSettings:
		return "Settings"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// SettingsRow is a line of the settings screen.
type SettingsRow int

const (
	SettingsVolume SettingsRow = iota
	SettingsMute
	SettingsBack
	settingsRowCount
)

// GameOptions configures a Game.
type GameOptions struct {
	Settings config.Settings
	Audio    audio.Player // nil plays nothing
	Logger   *log.Logger  // nil discards
	Rand     *rand.Rand   // nil seeds from Settings.Seed, or the clock
}

// Game is the whole program state behind a frontend: the screen state
// machine, the audio settings and, while playing, the World.
type Game struct {
	screen      Screen
	menuIndex   int
	settingsRow SettingsRow

	volume int
	muted  bool

	world *World
	rng   *rand.Rand

	audio  audio.Player
	logger *log.Logger
	quit   bool
}

// NewGame creates a game on the main menu.
func NewGame(opts GameOptions) *Game {
	settings := opts.Settings
	settings.Clamp()

	rng := opts.Rand
	if rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player.SetVolume(settings.Volume)
	player.SetMuted(settings.Muted)

	return &Game{
		screen: ScreenMenu,
		volume: settings.Volume,
		muted:  settings.Muted,
		rng:    rng,
		audio:  player,
		logger: logger,
	}
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// World returns the current run, or nil before the first game.
func (g *Game) World() *World {
	return g.world
}

// Quit reports whether the player chose to leave.
func (g *Game) Quit() bool {
	return g.quit
}

// Volume returns the music volume (0..100).
func (g *Game) Volume() int {
	return g.volume
}

// Muted reports whether the music is muted.
func (g *Game) Muted() bool {
	return g.muted
}

// Update handles one frame of input and advances the world while playing.
func (g *Game) Update(in input.Input, delta time.Duration) error {
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	switch g.screen {
	case ScreenMenu:
		g.updateMenu(in)
	case ScreenInstructions:
		g.updateInstructions(in)
	case ScreenSettings:
		g.updateSettings(in)
	case ScreenPlaying:
		return g.updatePlaying(in, delta)
	case ScreenGameOver:
		g.updateGameOver(in)
	}
	return nil
}

func (g *Game) updateMenu(in input.Input) {
	for _, key := range in.Keys {
		switch key {
		case input.KeyUp:
			g.menuIndex = (g.menuIndex + len(MenuItems) - 1) % len(MenuItems)
		case input.KeyDown:
			g.menuIndex = (g.menuIndex + 1) % len(MenuItems)
		case input.KeyEnter, input.KeyFire:
			g.selectMenu(MenuItems[g.menuIndex])
			return
		case input.KeyQuit:
			g.quit = true
			return
		}
	}
}

func (g *Game) selectMenu(item MenuItem) {
	switch item {
	case MenuPlay:
		g.startGame()
	case MenuInstructions:
		g.setScreen(ScreenInstructions)
	case MenuSettings:
		g.settingsRow = SettingsVolume
		g.setScreen(ScreenSettings)
	case MenuQuit:
		g.quit = true
	}
}

func (g *Game) updateInstructions(in input.Input) {
	if in.Pressed(input.KeyEscape) || in.Pressed(input.KeyEnter) {
		g.setScreen(ScreenMenu)
	}
}

func (g *Game) updateSettings(in input.Input) {
	for _, key := range in.Keys {
		switch key {
		case input.KeyUp:
			g.settingsRow = (g.settingsRow + settingsRowCount - 1) % settingsRowCount
		case input.KeyDown:
			g.settingsRow = (g.settingsRow + 1) % settingsRowCount
		case input.KeyLeft:
			if g.settingsRow == SettingsVolume {
				g.changeVolume(-VolumeStep)
			}
		case input.KeyRight:
			if g.settingsRow == SettingsVolume {
				g.changeVolume(VolumeStep)
			}
		case input.KeyVolumeDown:
			g.changeVolume(-VolumeStep)
		case input.KeyVolumeUp:
			g.changeVolume(VolumeStep)
		case input.KeyMute:
			g.toggleMute()
		case input.KeyEnter:
			switch g.settingsRow {
			case SettingsMute:
				g.toggleMute()
			case SettingsBack:
				g.setScreen(ScreenMenu)
				return
			}
		case input.KeyEscape:
			g.setScreen(ScreenMenu)
			return
		}
	}
}

func (g *Game) updatePlaying(in input.Input, delta time.Duration) error {
	for _, key := range in.Keys {
		switch key {
		case input.KeyEscape:
			g.audio.Pause()
			g.setScreen(ScreenMenu)
			return nil
		case input.KeyMute:
			g.toggleMute()
		case input.KeyVolumeDown:
			g.changeVolume(-VolumeStep)
		case input.KeyVolumeUp:
			g.changeVolume(VolumeStep)
		}
	}

	if err := g.world.Step(in, delta); err != nil {
		return err
	}
	if g.world.Over {
		g.audio.Pause()
		g.logger.Info("game over", "score", g.world.Score, "time", g.world.Now.Round(time.Second))
		g.setScreen(ScreenGameOver)
	}
	return nil
}

func (g *Game) updateGameOver(in input.Input) {
	switch {
	case in.Pressed(input.KeyRetry) || in.Pressed(input.KeyEnter):
		g.startGame()
	case in.Pressed(input.KeyEscape):
		g.setScreen(ScreenMenu)
	}
}

// startGame begins a fresh run: score 0, full lives, music on.
func (g *Game) startGame() {
	if g.world != nil {
		g.world.Release()
	}
	g.world = NewWorld(g.rng)
	g.audio.Play()
	g.setScreen(ScreenPlaying)
}

func (g *Game) setScreen(s Screen) {
	if g.screen == s {
		return
	}
	g.logger.Debug("screen", "from", g.screen, "to", s)
	g.screen = s
}

func (g *Game) changeVolume(delta int) {
	v := g.volume + delta
	if v < config.MinVolume {
		v = config.MinVolume
	}
	if v > config.MaxVolume {
		v = config.MaxVolume
	}
	if v == g.volume {
		return
	}
	g.volume = v
	g.audio.SetVolume(v)
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	g.audio.SetMuted(g.muted)
}

// Draw paints the playfield. Outside a run only the background is drawn.
func (g *Game) Draw(s draw.Surface) error {
	if g.world == nil || (g.screen != ScreenPlaying && g.screen != ScreenGameOver) {
		return object.Background{}.Draw(object.DrawContext{Surface: s})
	}
	return g.world.Draw(object.DrawContext{Surface: s, Now: g.world.Now})
}
