package object

import (
	"image/color"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/physics"
)

// Player defaults.
const (
	PlayerWidth        = 20.0
	PlayerHeight       = 30.0
	PlayerSpeed        = 5.0
	PlayerHitboxRadius = 5.0

	// PlayerFireCooldown is the minimum time between shots while fire is held.
	PlayerFireCooldown = 200 * time.Millisecond
	// InvulnerableDuration is how long the player is immune after a hit.
	InvulnerableDuration = 2000 * time.Millisecond
	// blinkPeriod is the half-period of the blinking while invulnerable.
	blinkPeriod = 100 * time.Millisecond

	shotRadius = 4.0
	shotSpeed  = 8.0
	shotOffset = 20.0 // Distance above the player's centre where shots appear
)

// PlayerColor is the ship's fill colour.
var PlayerColor = draw.Hex("#ff77ff")

// Player is the ship the user steers around the bottom of the field.
type Player struct {
	X, Y          float64 // Centre
	Width, Height float64
	Speed         float64
	HitboxRadius  float64
	Color         color.NRGBA

	Invulnerable      bool
	invulnerableSince time.Duration
	lastShot          time.Duration
}

// NewPlayer creates a player centred on (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:            x,
		Y:            y,
		Width:        PlayerWidth,
		Height:       PlayerHeight,
		Speed:        PlayerSpeed,
		HitboxRadius: PlayerHitboxRadius,
		Color:        PlayerColor,
		lastShot:     never,
	}
}

// Update fires if allowed, then moves the ship within the field.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	if ctx.Input.Fire && ctx.Now-p.lastShot > PlayerFireCooldown && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewBullet(p.X, p.Y-shotOffset, shotRadius, playerShotColor, 0, -shotSpeed, PatternStraight, OwnerPlayer))
		p.lastShot = ctx.Now
	}

	p.move(ctx)
	return false, nil
}

// move applies held direction keys. A direction is only taken while the body
// is still inside the field on that side.
func (p *Player) move(ctx UpdateContext) {
	step := p.Speed * ctx.Frames()
	halfW, halfH := p.Width/2, p.Height/2
	in := ctx.Input

	if in.Left && p.X > halfW {
		p.X = physics.Clamp(p.X-step, halfW, ctx.Field.Width-halfW)
	}
	if in.Right && p.X < ctx.Field.Width-halfW {
		p.X = physics.Clamp(p.X+step, halfW, ctx.Field.Width-halfW)
	}
	if in.Up && p.Y > halfH {
		p.Y = physics.Clamp(p.Y-step, halfH, ctx.Field.Height-halfH)
	}
	if in.Down && p.Y < ctx.Field.Height-halfH {
		p.Y = physics.Clamp(p.Y+step, halfH, ctx.Field.Height-halfH)
	}
}

// HitBy reports whether b overlaps the player's hitbox.
func (p *Player) HitBy(b *Bullet) bool {
	return physics.CirclesOverlap(p.X, p.Y, p.HitboxRadius, b.X, b.Y, b.Radius)
}

// MakeInvulnerable starts the post-hit immunity window.
func (p *Player) MakeInvulnerable(now time.Duration) {
	p.Invulnerable = true
	p.invulnerableSince = now
}

// ExpireInvulnerability ends the immunity window once it has run its course.
func (p *Player) ExpireInvulnerability(now time.Duration) {
	if p.Invulnerable && now-p.invulnerableSince > InvulnerableDuration {
		p.Invulnerable = false
	}
}

// Visible reports whether the ship is drawn at now. It blinks while invulnerable.
func (p *Player) Visible(now time.Duration) bool {
	return !p.Invulnerable || ShouldRenderBlink(now, blinkPeriod)
}

// Draw renders the ship as a triangle pointing up.
func (p *Player) Draw(ctx DrawContext) error {
	if !p.Visible(ctx.Now) {
		return nil
	}

	halfW, halfH := p.Width/2, p.Height/2
	triangle := []draw.Point{
		{X: p.X, Y: p.Y - halfH},
		{X: p.X - halfW, Y: p.Y + halfH},
		{X: p.X + halfW, Y: p.Y + halfH},
	}
	ctx.Surface.FillPolygon(triangle, p.Color)
	return nil
}
