package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
)

func TestSpawnExplosion(t *testing.T) {
	c := &collector{}
	red := draw.Hex("#ff0000")
	SpawnExplosion(100, 100, 12, 80, 0.5, red, rand.New(rand.NewSource(3)), c)

	if len(c.objects) != 12 {
		t.Fatalf("Expected 12 particles, got %d", len(c.objects))
	}
	for _, obj := range c.objects {
		p, ok := obj.(*Particle)
		if !ok {
			t.Fatalf("Expected *Particle, got %T", obj)
		}
		if p.Color != red {
			t.Errorf("Expected red particle, got %v", p.Color)
		}
		if p.Lifetime < 0.25 || p.Lifetime > 0.5 {
			t.Errorf("Expected lifetime in [0.25, 0.5], got %f", p.Lifetime)
		}
	}
}

func TestSpawnExplosionNilSpawner(t *testing.T) {
	// Must not panic.
	SpawnExplosion(0, 0, 5, 10, 1, draw.White, rand.New(rand.NewSource(1)), nil)
}

func TestParticleLifetime(t *testing.T) {
	p := NewParticle(0, 0, 60, 0, 0.1, 2, draw.White)
	defer p.Release()

	ctx := UpdateContext{Delta: 50 * time.Millisecond}
	if remove, _ := p.Update(ctx); remove {
		t.Fatal("Expected particle alive after 50ms")
	}
	if p.X <= 0 {
		t.Errorf("Expected particle to move right, got x %f", p.X)
	}
	if remove, _ := p.Update(ctx); !remove {
		t.Error("Expected particle removed after its lifetime")
	}
}

func TestParticleFades(t *testing.T) {
	p := NewParticle(0, 0, 0, 0, 1, 2, draw.White)
	defer p.Release()
	r := &recorder{}

	p.Draw(DrawContext{Surface: r})
	if r.circles != 1 || r.lastColor.A != 255 {
		t.Fatalf("Expected opaque circle, got %d circles alpha %d", r.circles, r.lastColor.A)
	}

	p.Lifetime = 0.5
	p.Draw(DrawContext{Surface: r})
	if r.lastColor.A != 128 {
		t.Errorf("Expected half alpha, got %d", r.lastColor.A)
	}

	p.Lifetime = 0.05
	p.Draw(DrawContext{Surface: r})
	if r.circles != 2 {
		t.Error("Expected nearly dead particle to be skipped")
	}
}
