package loop

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Playfield
const (
	FieldWidth   = 500.0
	FieldHeight  = 700.0
	PlayerStartX = FieldWidth / 2
	PlayerStartY = FieldHeight - 50
)

// Scoring
const (
	InitialLives  = 3
	ScorePerEnemy = 100
)

// Explosions when an enemy is destroyed
const (
	explosionParticles = 14
	explosionSpeed     = 150.0 // Units per second
	explosionLifetime  = 0.6   // Seconds
)

// Settings adjustments
const (
	VolumeStep = 5
)

// Frame timing
const (
	defaultFPS = 60
	// maxFrameDelta caps a single step so a stalled terminal does not teleport entities.
	maxFrameDelta = 100 * time.Millisecond
)
