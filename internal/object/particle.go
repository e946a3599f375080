package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/nightmare/internal/draw"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity in units per second
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per reference frame (1.0 = no drag)
	Radius      float64
	Color       color.NRGBA
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime, radius float64, c color.NRGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Radius = radius
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates count particles of colour c in a circular burst.
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, c color.NRGBA, rng *rand.Rand, spawner Spawner) {
	if spawner == nil || rng == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)
		radius := 1.5 + rng.Float64()*2

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, radius, c)
		spawner.Spawn(p)
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, ctx.Frames())
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return false, nil
}

// Draw renders the particle, fading it out over its lifetime.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.MaxLifetime <= 0 {
		return nil
	}
	alpha := p.Lifetime / p.MaxLifetime
	if alpha < 0.1 {
		return nil
	}
	ctx.Surface.FillCircle(p.X, p.Y, p.Radius, draw.WithAlpha(p.Color, alpha))
	return nil
}
