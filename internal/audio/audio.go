// Package audio plays the looping background music.
package audio

import (
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/nightmare/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality is passed to beep.Resample when a file's rate differs.
	resampleQuality = 4
)

// Player controls the background music.
// Volume is 0..100; a muted player keeps its volume for when it is unmuted.
type Player interface {
	Play()
	Pause()
	SetVolume(volume int)
	SetMuted(muted bool)
	Close() error
}

// Silent is a Player that makes no sound. It is used over SSH and when no
// audio device is available.
type Silent struct{}

func (Silent) Play()         {}
func (Silent) Pause()        {}
func (Silent) SetVolume(int) {}
func (Silent) SetMuted(bool) {}
func (Silent) Close() error  { return nil }

// gain maps a 0..100 volume to an effects.Volume setting with base 2.
// Zero volume or mute yields silence.
func gain(volume int, muted bool) (level float64, silent bool) {
	if muted || volume <= config.MinVolume {
		return 0, true
	}
	if volume > config.MaxVolume {
		volume = config.MaxVolume
	}
	return math.Log2(float64(volume) / 100), false
}

// Music is a Player backed by the beep speaker.
type Music struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	closer func() error

	level int
	muted bool
}

// NewMusic wraps s for playback. The music starts paused.
func NewMusic(s beep.Streamer, volume int, muted bool) *Music {
	m := &Music{
		ctrl:  &beep.Ctrl{Streamer: s, Paused: true},
		level: volume,
		muted: muted,
	}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.applyGain()
	return m
}

// Streamer returns the stream to hand to the speaker.
func (m *Music) Streamer() beep.Streamer {
	return m.volume
}

// Paused reports whether playback is paused.
func (m *Music) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return m.ctrl.Paused
}

func (m *Music) Play() {
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
}

func (m *Music) Pause() {
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

func (m *Music) SetVolume(volume int) {
	speaker.Lock()
	m.level = volume
	m.applyGain()
	speaker.Unlock()
}

func (m *Music) SetMuted(muted bool) {
	speaker.Lock()
	m.muted = muted
	m.applyGain()
	speaker.Unlock()
}

// applyGain must be called with the speaker locked.
func (m *Music) applyGain() {
	m.volume.Volume, m.volume.Silent = gain(m.level, m.muted)
}

// Close stops playback and releases the music source.
func (m *Music) Close() error {
	speaker.Clear()
	if m.closer != nil {
		return m.closer()
	}
	return nil
}

// Open initialises the speaker and prepares the music named in settings, or
// the built-in track when no file is set or it cannot be decoded.
// Audio is optional: on any speaker failure a Silent player is returned.
func Open(settings config.Settings, logger *log.Logger) Player {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without music", "err", err)
		return Silent{}
	}

	var (
		source beep.Streamer = NewChiptune(sampleRate)
		closer func() error
	)
	if settings.MusicFile != "" {
		s, c, err := loadMP3(settings.MusicFile)
		if err != nil {
			logger.Warn("music file unusable, using built-in track", "file", settings.MusicFile, "err", err)
		} else {
			source, closer = s, c
			logger.Debug("music loaded", "file", settings.MusicFile)
		}
	}

	m := NewMusic(source, settings.Volume, settings.Muted)
	m.closer = func() error {
		speaker.Close()
		if closer != nil {
			return closer()
		}
		return nil
	}
	speaker.Play(m.Streamer())
	return m
}

// loadMP3 decodes path into an endless loop at the speaker's sample rate.
func loadMP3(path string) (beep.Streamer, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}
	return s, streamer.Close, nil
}
