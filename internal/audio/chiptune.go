package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// stepDuration is the length of one melody step (an eighth note at 140 BPM).
const stepDuration = 214 * time.Millisecond

// rest marks a silent melody step.
const rest = -100

// Semitone offsets from A4. The lead loops over 32 steps, the bass over 8.
var (
	leadLine = []int{
		0, 3, 7, 12, 10, 7, 3, 7,
		5, 8, 12, 17, 15, 12, 8, rest,
		-2, 2, 5, 10, 8, 5, 2, 5,
		-1, 3, 7, 11, 12, rest, 11, 7,
	}
	bassLine = []int{-24, -24, -19, -19, -26, -26, -25, -25}
)

// Chiptune is an endless square-wave lead over a triangle bass.
type Chiptune struct {
	sr        beep.SampleRate
	stepLen   int
	pos       int
	leadPhase float64
	bassPhase float64
}

// NewChiptune creates the built-in music track.
func NewChiptune(sr beep.SampleRate) *Chiptune {
	return &Chiptune{
		sr:      sr,
		stepLen: sr.N(stepDuration),
	}
}

func noteFreq(semitones int) float64 {
	return 440 * math.Pow(2, float64(semitones)/12)
}

func (g *Chiptune) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := g.pos / g.stepLen
		inStep := float64(g.pos%g.stepLen) / float64(g.stepLen)

		lead := 0.0
		if note := leadLine[step%len(leadLine)]; note != rest {
			g.leadPhase = math.Mod(g.leadPhase+noteFreq(note)/float64(g.sr), 1)
			if g.leadPhase < 0.5 {
				lead = 1
			} else {
				lead = -1
			}
			// Short decay per note
			lead *= 0.12 * (1 - 0.6*inStep)
		}

		bassNote := bassLine[(step/4)%len(bassLine)]
		g.bassPhase = math.Mod(g.bassPhase+noteFreq(bassNote)/float64(g.sr), 1)
		bass := 0.18 * (4*math.Abs(g.bassPhase-0.5) - 1)

		sample := lead + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Chiptune) Err() error {
	return nil
}
