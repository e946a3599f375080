package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/nightmare/internal/draw"
	"github.com/tomz197/nightmare/internal/object"
)

func newTestWorld() *World {
	return NewWorld(rand.New(rand.NewSource(7)))
}

func enemyBulletAt(x, y float64) *object.Bullet {
	return object.NewBullet(x, y, 5, draw.Hex("#00ff00"), 0, 0, object.PatternStraight, object.OwnerEnemy)
}

func playerBulletAt(x, y float64) *object.Bullet {
	return object.NewBullet(x, y, 4, draw.White, 0, 0, object.PatternStraight, object.OwnerPlayer)
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newTestWorld()
	w.Bullets = []*object.Bullet{enemyBulletAt(w.Player.X, w.Player.Y+9)}

	w.checkCollisions()

	if w.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", w.Lives)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("Expected bullet removed, got %d", len(w.Bullets))
	}
	if !w.Player.Invulnerable {
		t.Error("Expected player invulnerable after a hit")
	}
	if w.Over {
		t.Error("Expected game to continue")
	}
}

func TestEnemyBulletMissesAtRadiusSum(t *testing.T) {
	w := newTestWorld()
	w.Bullets = []*object.Bullet{enemyBulletAt(w.Player.X, w.Player.Y+10)}

	w.checkCollisions()

	if w.Lives != 3 || len(w.Bullets) != 1 {
		t.Errorf("Expected a miss at distance r+5, got lives %d bullets %d", w.Lives, len(w.Bullets))
	}
}

func TestInvulnerablePlayerIgnoresBullets(t *testing.T) {
	w := newTestWorld()
	w.Player.MakeInvulnerable(0)
	w.Bullets = []*object.Bullet{
		enemyBulletAt(w.Player.X, w.Player.Y),
		enemyBulletAt(w.Player.X+1, w.Player.Y),
	}

	w.checkCollisions()

	if w.Lives != 3 {
		t.Errorf("Expected no lives lost, got %d", w.Lives)
	}
	if len(w.Bullets) != 2 {
		t.Errorf("Expected bullets to pass through, got %d", len(w.Bullets))
	}
}

func TestOneHitPerFrame(t *testing.T) {
	w := newTestWorld()
	w.Bullets = []*object.Bullet{
		enemyBulletAt(w.Player.X, w.Player.Y),
		enemyBulletAt(w.Player.X, w.Player.Y),
	}

	w.checkCollisions()

	if w.Lives != 2 {
		t.Errorf("Expected invulnerability to stop the second bullet, got %d lives", w.Lives)
	}
	if len(w.Bullets) != 1 {
		t.Errorf("Expected one bullet left, got %d", len(w.Bullets))
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	w := newTestWorld()
	w.Lives = 1
	w.Score = 500
	hit := playerBulletAt(100, 100)
	w.Enemies = []*object.Enemy{object.NewEnemy(object.EnemyDataStructure, 100, 100)}
	// Processed newest first: the enemy bullet ends the game before the player bullet lands.
	w.Bullets = []*object.Bullet{hit, enemyBulletAt(w.Player.X, w.Player.Y)}

	w.checkCollisions()

	if !w.Over || w.Lives != 0 {
		t.Fatalf("Expected game over with 0 lives, got over=%v lives=%d", w.Over, w.Lives)
	}
	if w.Player.Invulnerable {
		t.Error("Expected no invulnerability after the last life")
	}
	if w.Enemies[0].Health != 2 || w.Score != 500 {
		t.Error("Expected no hits processed after game over")
	}
}

func TestPlayerBulletDamagesEnemy(t *testing.T) {
	w := newTestWorld()
	e := object.NewEnemy(object.EnemyBinary, 100, 100)
	w.Enemies = []*object.Enemy{e}
	w.Bullets = []*object.Bullet{playerBulletAt(105, 95)}

	w.checkCollisions()

	if e.Health != 2 {
		t.Errorf("Expected health 2, got %d", e.Health)
	}
	if len(w.Bullets) != 0 {
		t.Error("Expected bullet consumed")
	}
	if len(w.Enemies) != 1 || w.Score != 0 {
		t.Errorf("Expected enemy alive and no score, got %d enemies score %d", len(w.Enemies), w.Score)
	}
}

func TestPlayerBulletOnEdgeMisses(t *testing.T) {
	w := newTestWorld()
	w.Enemies = []*object.Enemy{object.NewEnemy(object.EnemyBinary, 100, 100)}
	w.Bullets = []*object.Bullet{playerBulletAt(115, 100)}

	w.checkCollisions()

	if w.Enemies[0].Health != 3 || len(w.Bullets) != 1 {
		t.Error("Expected a bullet on the edge to miss")
	}
}

func TestPlayerBulletHitsOnlyOneEnemy(t *testing.T) {
	w := newTestWorld()
	older := object.NewEnemy(object.EnemyBinary, 100, 100)
	newer := object.NewEnemy(object.EnemyBinary, 110, 100)
	w.Enemies = []*object.Enemy{older, newer}
	w.Bullets = []*object.Bullet{playerBulletAt(105, 100)}

	w.checkCollisions()

	if newer.Health != 2 || older.Health != 3 {
		t.Errorf("Expected only the newest overlapping enemy hit, got older %d newer %d", older.Health, newer.Health)
	}
}

func TestDestroyingEnemyScores(t *testing.T) {
	w := newTestWorld()
	e := object.NewEnemy(object.EnemyDataStructure, 200, 200)
	e.Health = 1
	w.Enemies = []*object.Enemy{e}
	w.Bullets = []*object.Bullet{playerBulletAt(200, 200)}

	w.checkCollisions()

	if w.Score != ScorePerEnemy {
		t.Errorf("Expected score %d, got %d", ScorePerEnemy, w.Score)
	}
	if len(w.Enemies) != 0 {
		t.Error("Expected enemy removed")
	}
	if len(w.Effects) != explosionParticles {
		t.Errorf("Expected %d explosion particles, got %d", explosionParticles, len(w.Effects))
	}
}

func TestPlayerBulletsIgnoreInvulnerability(t *testing.T) {
	w := newTestWorld()
	w.Player.MakeInvulnerable(0)
	e := object.NewEnemy(object.EnemyBinary, 100, 100)
	w.Enemies = []*object.Enemy{e}
	w.Bullets = []*object.Bullet{playerBulletAt(100, 100)}

	w.checkCollisions()

	if e.Health != 2 {
		t.Errorf("Expected the hit to count, got health %d", e.Health)
	}
}

func TestInvulnerabilityExpiresInStep(t *testing.T) {
	w := newTestWorld()
	w.Bullets = []*object.Bullet{enemyBulletAt(w.Player.X, w.Player.Y)}
	w.Step(object.Input{}, frame)
	if !w.Player.Invulnerable {
		t.Fatal("Expected invulnerability after the hit")
	}

	for w.Now < 2*time.Second {
		w.Step(object.Input{}, frame)
		// Keep enemy fire out of the way.
		w.Enemies = nil
		w.Bullets = nil
	}
	w.Step(object.Input{}, 100*time.Millisecond)
	if w.Player.Invulnerable {
		t.Error("Expected invulnerability to expire after 2 s")
	}
}
