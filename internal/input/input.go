// Package input turns keyboard activity into per-frame input state.
package input

import (
	"bufio"
	"context"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
// before it counts as the Escape key.
const escapeTimeout = 25 * time.Millisecond

// Key is a discrete key press used for menus and toggles.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyFire
	KeyMute
	KeyVolumeUp
	KeyVolumeDown
	KeyRetry
	KeyQuit
)

var keyNames = map[Key]string{
	KeyNone:       "none",
	KeyUp:         "up",
	KeyDown:       "down",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyFire:       "fire",
	KeyMute:       "mute",
	KeyVolumeUp:   "volume-up",
	KeyVolumeDown: "volume-down",
	KeyRetry:      "retry",
	KeyQuit:       "quit",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Input represents the current frame's input state.
type Input struct {
	// Held state for movement and shooting.
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool

	// Keys lists the presses seen this frame, in order.
	Keys []Key

	// Closed is set once the input source has ended (EOF or disconnect).
	Closed bool
}

// Pressed reports whether k was pressed this frame.
func (in Input) Pressed(k Key) bool {
	for _, key := range in.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time

	// pending holds a trailing escape sequence that may still be completed by
	// the next read; pendingSince is when it was first held back.
	pending      []byte
	pendingSince time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine stops at EOF, on a read error, or once ctx is done.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// Reset forgets held keys, so a key held across a screen change does not carry over.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf)
}

// parse updates key state from raw bytes and builds the frame's Input.
func (s *Stream) parse(buf []byte) Input {
	now := s.now()
	in := Input{Closed: s.closed}

	// A sequence held back last read sits at the front of buf.
	heldSince := s.pendingSince
	s.pendingSince = time.Time{}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if key := s.applyByte(b, now); key != KeyNone {
				in.Keys = append(in.Keys, key)
			}
			continue
		}

		n, key, complete := s.escapeSequence(buf[i:], now)
		if !complete {
			since := now
			if i == 0 && !heldSince.IsZero() {
				since = heldSince
			}
			if s.holdPending(buf[i:], since, now) {
				break
			}
			// Timed out or the input ended: a lone ESC is the Escape key,
			// anything longer is an unfinished sequence and is dropped.
			if len(buf)-i == 1 {
				in.Keys = append(in.Keys, KeyEscape)
			}
			break
		}
		if key != KeyNone {
			in.Keys = append(in.Keys, key)
		}
		i += n - 1
	}

	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Fire = now.Sub(s.state.fire) < keyHoldDuration

	return in
}

// escapeSequence decodes the sequence at the start of buf, which begins with
// ESC. It returns the bytes consumed and the key, KeyNone for sequences that
// are not bound. complete is false when buf ends before the sequence does.
func (s *Stream) escapeSequence(buf []byte, now time.Time) (n int, key Key, complete bool) {
	if len(buf) < 2 {
		return 0, KeyNone, false
	}

	switch buf[1] {
	case '[':
		// CSI: parameter bytes 0x30-0x3F, intermediate bytes 0x20-0x2F, final byte 0x40-0x7E.
		for j := 2; j < len(buf); j++ {
			c := buf[j]
			if c >= 0x20 && c <= 0x3F {
				continue
			}
			if c >= 0x40 && c <= 0x7E {
				return j + 1, s.applyArrow(c, now), true
			}
			// Not a valid CSI byte: treat the ESC as a key of its own.
			return 1, KeyEscape, true
		}
		return 0, KeyNone, false
	case 'O':
		// SS3: a single final byte.
		if len(buf) < 3 {
			return 0, KeyNone, false
		}
		return 3, s.applyArrow(buf[2], now), true
	}

	// ESC followed by anything else: the Escape key, then that byte on its own.
	return 1, KeyEscape, true
}

// applyArrow maps the final byte of a cursor key sequence to a held arrow key.
func (s *Stream) applyArrow(final byte, now time.Time) Key {
	switch final {
	case 'A':
		s.state.up = now
		return KeyUp
	case 'B':
		s.state.down = now
		return KeyDown
	case 'C':
		s.state.right = now
		return KeyRight
	case 'D':
		s.state.left = now
		return KeyLeft
	}
	return KeyNone
}

// holdPending keeps an unfinished escape sequence, first seen at since, for
// the next read. It reports false once the sequence has waited escapeTimeout
// or the input ended.
func (s *Stream) holdPending(tail []byte, since, now time.Time) bool {
	if s.closed || now.Sub(since) >= escapeTimeout {
		return false
	}
	s.pending = append(s.pending[:0], tail...)
	s.pendingSince = since
	return true
}

// applyByte updates the held-key timestamps and maps the byte to a Key.
func (s *Stream) applyByte(b byte, now time.Time) Key {
	switch b {
	case 'w', 'W', 'k', 'K':
		s.state.up = now
		return KeyUp
	case 's', 'S', 'j', 'J':
		s.state.down = now
		return KeyDown
	case 'a', 'A', 'h', 'H':
		s.state.left = now
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		s.state.right = now
		return KeyRight
	case 'z', 'Z':
		s.state.fire = now
		return KeyFire
	case ' ', '\n', '\r':
		return KeyEnter
	case '\x1b':
		return KeyEscape
	case 'm', 'M':
		return KeyMute
	case '+', '=':
		return KeyVolumeUp
	case '-', '_':
		return KeyVolumeDown
	case 'r', 'R':
		return KeyRetry
	case 'q', 'Q', '\x03':
		return KeyQuit
	}
	return KeyNone
}
