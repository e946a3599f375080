package object

import (
	"image/color"
	"math"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/physics"
)

// EnemyType selects an enemy's colour, toughness and firing pattern.
type EnemyType int

const (
	EnemyBinary EnemyType = iota
	EnemyAlgorithm
	EnemyDataStructure
)

// EnemyTypeCount is the number of enemy types, for uniform random picks.
const EnemyTypeCount = 3

// Enemy dimensions and movement.
const (
	EnemySize  = 30.0
	EnemySpeed = 1.0

	// enemyExitMargin is how far below the field an enemy may drift before removal.
	enemyExitMargin = 20.0
)

// EnemyKind holds the fixed parameters of an enemy type.
type EnemyKind struct {
	Name     string
	Label    string
	Color    color.NRGBA
	Health   int
	Interval time.Duration // Time between volleys
}

var enemyKinds = [EnemyTypeCount]EnemyKind{
	EnemyBinary: {
		Name:     "binary",
		Label:    "01",
		Color:    draw.Hex("#00ff00"),
		Health:   3,
		Interval: 1000 * time.Millisecond,
	},
	EnemyAlgorithm: {
		Name:     "algorithm",
		Label:    "Θ",
		Color:    draw.Hex("#ff0000"),
		Health:   5,
		Interval: 800 * time.Millisecond,
	},
	EnemyDataStructure: {
		Name:     "datastructure",
		Label:    "{}",
		Color:    draw.Hex("#0000ff"),
		Health:   2,
		Interval: 1200 * time.Millisecond,
	},
}

// Kind returns the parameters of t. Unknown types fall back to the data structure kind.
func (t EnemyType) Kind() EnemyKind {
	if t < 0 || int(t) >= len(enemyKinds) {
		return enemyKinds[EnemyDataStructure]
	}
	return enemyKinds[t]
}

func (t EnemyType) String() string {
	return t.Kind().Name
}

// Enemy is a square foe that drifts down the field and fires volleys.
type Enemy struct {
	X, Y          float64 // Centre
	Width, Height float64
	Speed         float64
	Health        int
	Type          EnemyType
	lastShot      time.Duration
	destroyed     bool
}

// NewEnemy creates an enemy of type t centred on (x, y). It fires on its first update.
func NewEnemy(t EnemyType, x, y float64) *Enemy {
	return &Enemy{
		X:        x,
		Y:        y,
		Width:    EnemySize,
		Height:   EnemySize,
		Speed:    EnemySpeed,
		Health:   t.Kind().Health,
		Type:     t,
		lastShot: never,
	}
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Bounds returns the enemy's hit rectangle.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{CX: e.X, CY: e.Y, Width: e.Width, Height: e.Height}
}

// Hit takes one point of health and reports whether the enemy died.
func (e *Enemy) Hit() bool {
	e.Health--
	if e.Health <= 0 {
		e.destroyed = true
		return true
	}
	return false
}

// Update moves the enemy down, fires when its interval has elapsed and drops it below the field.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if e.destroyed {
		return true, nil
	}

	e.Y += e.Speed * ctx.Frames()

	if ctx.Now-e.lastShot > e.Type.Kind().Interval {
		e.shoot(ctx.Spawner)
		e.lastShot = ctx.Now
	}

	return e.Y >= ctx.Field.Height+enemyExitMargin, nil
}

// shoot spawns the volley for the enemy's type.
func (e *Enemy) shoot(spawner Spawner) {
	if spawner == nil {
		return
	}
	c := e.Type.Kind().Color

	switch e.Type {
	case EnemyBinary:
		spawner.Spawn(NewBullet(e.X, e.Y, 5, c, -1.5, 3, PatternStraight, OwnerEnemy))
		spawner.Spawn(NewBullet(e.X, e.Y, 5, c, 1.5, 3, PatternStraight, OwnerEnemy))
	case EnemyAlgorithm:
		const rays = 8
		for i := 0; i < rays; i++ {
			angle := 2 * math.Pi / rays * float64(i)
			vx := math.Cos(angle) * 2
			vy := math.Sin(angle)*2 + 1
			spawner.Spawn(NewBullet(e.X, e.Y, 4, c, vx, vy, PatternSpiral, OwnerEnemy))
		}
	default:
		spawner.Spawn(NewBullet(e.X, e.Y, 6, c, 0, 3, PatternSine, OwnerEnemy))
	}
}

// Draw renders the enemy as a filled square with its type label.
func (e *Enemy) Draw(ctx DrawContext) error {
	kind := e.Type.Kind()
	ctx.Surface.FillRect(e.X-e.Width/2, e.Y-e.Height/2, e.Width, e.Height, kind.Color)
	ctx.Surface.Label(e.X, e.Y, kind.Label, draw.Black, kind.Color)
	return nil
}
