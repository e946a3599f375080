package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/nightmare/internal/object"
)

// Screen is the part of the program the player is looking at.
type Screen int

const (
	ScreenMenu         Screen = iota // Main menu
	ScreenInstructions               // Controls and enemy guide
	ScreenSettings                   // Volume and mute
	ScreenPlaying                    // Active gameplay
	ScreenGameOver                   // Frozen world with final score
)

var screenNames = map[Screen]string{
	ScreenMenu:         "menu",
	ScreenInstructions: "instructions",
	ScreenSettings:     "settings",
	ScreenPlaying:      "playing",
	ScreenGameOver:     "game-over",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

// Field is the logical playfield all entities live in.
var Field = object.Field{Width: FieldWidth, Height: FieldHeight}

// World holds one run of the game: entities, score, lives and the game clock.
type World struct {
	Player     *object.Player
	Spawner    *object.EnemySpawner
	Background object.Background
	Bullets    []*object.Bullet
	Enemies    []*object.Enemy
	Effects    []object.Object // Particles

	Score int
	Lives int
	Now   time.Duration // Sum of frame deltas since the run started
	Over  bool

	rng *rand.Rand
}

// NewWorld creates a fresh run: full lives, no score, the player at the bottom.
func NewWorld(rng *rand.Rand) *World {
	return &World{
		Player:  object.NewPlayer(PlayerStartX, PlayerStartY),
		Spawner: object.NewEnemySpawner(object.EnemySpawnInterval),
		Lives:   InitialLives,
		rng:     rng,
	}
}

// Spawn adds obj to the matching entity list right away, so a bullet fired
// this frame moves in the same frame when bullets are updated later.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Bullet:
		w.Bullets = append(w.Bullets, o)
	case *object.Enemy:
		w.Enemies = append(w.Enemies, o)
	default:
		w.Effects = append(w.Effects, obj)
	}
}

// UpdateContext creates an UpdateContext for one frame.
func (w *World) UpdateContext(in object.Input, delta time.Duration) object.UpdateContext {
	return object.UpdateContext{
		Delta:   delta,
		Now:     w.Now,
		Input:   in,
		Field:   Field,
		Spawner: w,
		Rand:    w.rng,
	}
}

// Release returns pooled effects to their pools.
func (w *World) Release() {
	for _, obj := range w.Effects {
		object.ReleaseObject(obj)
	}
	w.Effects = nil
}
