package object

import (
	"image/color"
	"math"

	"github.com/tomz197/nightmare/internal/draw"
)

// Pattern selects how a bullet moves.
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternSine
	PatternSpiral
)

func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternSine:
		return "sine"
	case PatternSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// Owner tells player shots apart from enemy fire.
type Owner int

const (
	OwnerEnemy Owner = iota
	OwnerPlayer
)

const (
	// bulletMargin is how far outside the field a bullet may travel before removal.
	bulletMargin = 10.0

	sineWavelength = 20.0 // y units per radian
	sineAmplitude  = 2.0

	spiralStep   = 0.05 // radians per reference frame
	spiralRadius = 2.0
)

// Bullet is a round projectile fired by the player or an enemy.
type Bullet struct {
	X, Y      float64 // Centre
	VX, VY    float64 // Velocity in units per reference frame
	Radius    float64
	Color     color.NRGBA
	Pattern   Pattern
	Owner     Owner
	angle     float64 // Spiral phase
	destroyed bool
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y, radius float64, c color.NRGBA, vx, vy float64, pattern Pattern, owner Owner) *Bullet {
	return &Bullet{
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Radius:  radius,
		Color:   c,
		Pattern: pattern,
		Owner:   owner,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// FromPlayer reports whether the player fired the bullet.
func (b *Bullet) FromPlayer() bool {
	return b.Owner == OwnerPlayer
}

// Update moves the bullet along its pattern and drops it once it leaves the field.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}

	f := ctx.Frames()
	switch b.Pattern {
	case PatternSine:
		b.X += b.VX * f
		b.Y += b.VY * f
		b.X += math.Sin(b.Y/sineWavelength) * sineAmplitude * f
	case PatternSpiral:
		b.angle += spiralStep * f
		b.X += (math.Cos(b.angle)*spiralRadius + b.VX) * f
		b.Y += (math.Sin(b.angle)*spiralRadius + b.VY) * f
	default:
		b.X += b.VX * f
		b.Y += b.VY * f
	}

	return b.outside(ctx.Field), nil
}

func (b *Bullet) outside(field Field) bool {
	return b.X < -bulletMargin || b.X > field.Width+bulletMargin ||
		b.Y < -bulletMargin || b.Y > field.Height+bulletMargin
}

// Draw renders the bullet as a filled circle.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Surface.FillCircle(b.X, b.Y, b.Radius, b.Color)
	return nil
}

// playerShotColor is the colour of the player's bullets.
var playerShotColor = draw.White
