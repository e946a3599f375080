package object

import "time"

// EnemySpawnInterval is the time between enemy spawns.
const EnemySpawnInterval = 2000 * time.Millisecond

// EnemySpawner drops a random enemy at the top of the field at a fixed cadence.
type EnemySpawner struct {
	Interval  time.Duration
	lastSpawn time.Duration
}

// NewEnemySpawner creates a spawner. The first enemy appears on its first update.
func NewEnemySpawner(interval time.Duration) *EnemySpawner {
	if interval <= 0 {
		interval = EnemySpawnInterval
	}
	return &EnemySpawner{
		Interval:  interval,
		lastSpawn: never,
	}
}

// Update spawns an enemy of uniformly random type once the interval has elapsed.
func (s *EnemySpawner) Update(ctx UpdateContext) (bool, error) {
	if ctx.Spawner == nil || ctx.Rand == nil {
		return false, nil
	}
	if ctx.Now-s.lastSpawn <= s.Interval {
		return false, nil
	}

	t := EnemyType(ctx.Rand.Intn(EnemyTypeCount))
	x := ctx.Rand.Float64()*(ctx.Field.Width-EnemySize) + EnemySize/2
	ctx.Spawner.Spawn(NewEnemy(t, x, 0))
	s.lastSpawn = ctx.Now

	return false, nil
}

// Draw is a no-op; spawner is not visible.
func (s *EnemySpawner) Draw(_ DrawContext) error {
	return nil
}
