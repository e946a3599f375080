package loop

import (
	"github.com/tomz197/nightmare/internal/object"
)

// checkCollisions resolves bullet hits for this frame, newest bullet first.
// Enemy bullets hurt a vulnerable player; player bullets damage the first
// enemy (newest first) whose square strictly contains them.
func (w *World) checkCollisions() {
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := w.Bullets[i]
		if b.IsDestroyed() {
			continue
		}

		if !b.FromPlayer() {
			if w.Player.Invulnerable || !w.Player.HitBy(b) {
				continue
			}
			b.MarkDestroyed()
			if w.loseLife() {
				break // Game over, nothing else counts this frame
			}
			continue
		}

		w.checkPlayerBullet(b)
	}

	w.Bullets = removeDestroyed(w.Bullets)
	w.Enemies = removeDestroyed(w.Enemies)
}

// loseLife takes a life and reports whether the game is over.
func (w *World) loseLife() bool {
	w.Lives--
	if w.Lives <= 0 {
		w.Lives = 0
		w.Over = true
		return true
	}
	w.Player.MakeInvulnerable(w.Now)
	return false
}

// checkPlayerBullet applies b to at most one enemy.
func (w *World) checkPlayerBullet(b *object.Bullet) {
	for j := len(w.Enemies) - 1; j >= 0; j-- {
		e := w.Enemies[j]
		if e.IsDestroyed() || !e.Bounds().Contains(b.X, b.Y) {
			continue
		}

		b.MarkDestroyed()
		if e.Hit() {
			w.Score += ScorePerEnemy
			object.SpawnExplosion(e.X, e.Y, explosionParticles, explosionSpeed, explosionLifetime,
				e.Type.Kind().Color, w.rng, w)
		}
		return
	}
}

// removeDestroyed drops destroyed entries, keeping order.
func removeDestroyed[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
