package loop

import "github.com/tomz197/nightmare/internal/object"

// View is a snapshot of what the UI around the playfield shows.
// Frontends render it; it carries no behaviour.
type View struct {
	Screen      Screen
	MenuIndex   int
	SettingsRow SettingsRow
	Volume      int
	Muted       bool
	Score       int
	Lives       int
	MaxLives    int
}

// View returns the UI snapshot for this frame.
func (g *Game) View() View {
	v := View{
		Screen:      g.screen,
		MenuIndex:   g.menuIndex,
		SettingsRow: g.settingsRow,
		Volume:      g.volume,
		Muted:       g.muted,
		Lives:       InitialLives,
		MaxLives:    InitialLives,
	}
	if g.world != nil {
		v.Score = g.world.Score
		v.Lives = g.world.Lives
	}
	return v
}

// Control is a key binding shown on the instructions screen.
type Control struct {
	Keys   string
	Action string
}

// Controls lists the key bindings shown to the player.
var Controls = []Control{
	{"Arrows / WASD", "move the ship"},
	{"Z", "fire"},
	{"M", "mute music"},
	{"+ / -", "music volume"},
	{"Esc", "back to the menu"},
}

// EnemyGuide describes an enemy type on the instructions screen.
type EnemyGuide struct {
	Kind        object.EnemyKind
	Description string
}

// Enemies lists the enemy types with how they attack.
var Enemies = []EnemyGuide{
	{object.EnemyBinary.Kind(), "Binary: fires in two directions"},
	{object.EnemyAlgorithm.Kind(), "Algorithm: fires in spiral patterns"},
	{object.EnemyDataStructure.Kind(), "Data Structure: fires in waves"},
}

// Title is the game's name.
const Title = "Infinite Nightmare of Computer Science"
