// Package object holds the game entities and the contracts the loop drives them through.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/input"
)

// referenceFPS is the frame rate entity speeds are expressed in.
// A speed of 5 means 5 units per 1/60 s.
const referenceFPS = 60

// never is a timestamp far enough in the past that any cooldown has elapsed.
const never = -time.Hour

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Field is the size of the playfield in logical units.
type Field struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration // Time since the previous frame
	Now     time.Duration // Game clock: sum of all frame deltas
	Input   Input
	Field   Field
	Spawner Spawner
	Rand    *rand.Rand
}

// Frames returns the frame delta in reference frames, the factor all
// per-frame speeds are multiplied by.
func (ctx UpdateContext) Frames() float64 {
	return ctx.Delta.Seconds() * referenceFPS
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
	Now     time.Duration
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ShouldRenderBlink reports whether a blinking object is visible at now.
// The object is hidden during even periods.
func ShouldRenderBlink(now, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	return (now/period)%2 != 0
}
