package input

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"
)

// fakeStream returns a stream with a controllable clock.
func fakeStream(start time.Time) (*Stream, *time.Time) {
	s := newStream()
	now := start
	s.now = func() time.Time { return now }
	return s, &now
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputArrowKeys(t *testing.T) {
	s, _ := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b[A\x1b[D")

	in := ReadInput(s)

	if !in.Up || !in.Left {
		t.Errorf("expected up and left held, got %+v", in)
	}
	if in.Down || in.Right || in.Fire {
		t.Errorf("unexpected held keys: %+v", in)
	}
	if len(in.Keys) != 2 || in.Keys[0] != KeyUp || in.Keys[1] != KeyLeft {
		t.Errorf("unexpected key events: %v", in.Keys)
	}
}

func TestReadInputHoldExpires(t *testing.T) {
	s, now := fakeStream(time.Unix(100, 0))
	feed(s, "z")

	in := ReadInput(s)
	if !in.Fire || !in.Pressed(KeyFire) {
		t.Fatalf("expected fire held and pressed, got %+v", in)
	}

	*now = now.Add(keyHoldDuration / 2)
	in = ReadInput(s)
	if !in.Fire {
		t.Error("expected fire still held within hold duration")
	}
	if in.Pressed(KeyFire) {
		t.Error("expected no new fire press")
	}

	*now = now.Add(keyHoldDuration)
	in = ReadInput(s)
	if in.Fire {
		t.Error("expected fire released after hold duration")
	}
}

func TestReadInputDiscreteKeys(t *testing.T) {
	tests := []struct {
		data string
		want Key
	}{
		{"\r", KeyEnter},
		{" ", KeyEnter},
		{"m", KeyMute},
		{"+", KeyVolumeUp},
		{"-", KeyVolumeDown},
		{"r", KeyRetry},
		{"q", KeyQuit},
		{"\x03", KeyQuit},
		{"k", KeyUp},
		{"j", KeyDown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			s, _ := fakeStream(time.Unix(100, 0))
			feed(s, tt.data)
			in := ReadInput(s)
			if !in.Pressed(tt.want) {
				t.Errorf("input %q: expected %v in %v", tt.data, tt.want, in.Keys)
			}
		})
	}
}

func TestStreamReset(t *testing.T) {
	s, _ := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b[B")
	if in := ReadInput(s); !in.Down {
		t.Fatal("expected down held")
	}

	s.Reset()
	if in := ReadInput(s); in.Down {
		t.Error("expected reset to release held keys")
	}
}

func TestStartStreamReportsClose(t *testing.T) {
	s := StartStream(context.Background(), bufio.NewReader(strings.NewReader("z")))

	deadline := time.Now().Add(time.Second)
	sawFire := false
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		if in.Pressed(KeyFire) {
			sawFire = true
		}
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !sawFire {
		t.Error("expected fire press from reader")
	}
	if !ReadInput(s).Closed {
		t.Error("expected stream to report closed after EOF")
	}
}

func TestReadInputLoneEscapeWaitsForTimeout(t *testing.T) {
	s, now := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b")

	if in := ReadInput(s); len(in.Keys) != 0 {
		t.Fatalf("Expected ESC to be held back, got %v", in.Keys)
	}

	*now = now.Add(escapeTimeout / 2)
	if in := ReadInput(s); len(in.Keys) != 0 {
		t.Fatalf("Expected ESC still held within timeout, got %v", in.Keys)
	}

	*now = now.Add(escapeTimeout)
	in := ReadInput(s)
	if len(in.Keys) != 1 || in.Keys[0] != KeyEscape {
		t.Fatalf("Expected escape after timeout, got %v", in.Keys)
	}

	// Nothing left over for the next frame
	if in := ReadInput(s); len(in.Keys) != 0 {
		t.Errorf("Expected no keys after escape was delivered, got %v", in.Keys)
	}
}

func TestReadInputEscapeFollowedByKey(t *testing.T) {
	s, _ := fakeStream(time.Unix(100, 0))
	feed(s, "\x1bz")

	in := ReadInput(s)
	if len(in.Keys) != 2 || in.Keys[0] != KeyEscape || in.Keys[1] != KeyFire {
		t.Errorf("Expected [escape fire], got %v", in.Keys)
	}
}

func TestReadInputEscapeOnClose(t *testing.T) {
	s, _ := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b")
	close(s.ch)

	in := ReadInput(s)
	if !in.Closed || !in.Pressed(KeyEscape) {
		t.Errorf("Expected escape and closed at end of input, got %+v", in)
	}
}

func TestReadInputSplitArrowSequence(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{"after ESC", []string{"\x1b", "[A"}},
		{"after bracket", []string{"\x1b[", "A"}},
		{"inside parameters", []string{"\x1b[1;", "5A"}},
		{"three reads", []string{"\x1b", "[", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, now := fakeStream(time.Unix(100, 0))
			var keys []Key
			var in Input
			for _, part := range tt.parts {
				feed(s, part)
				in = ReadInput(s)
				keys = append(keys, in.Keys...)
				*now = now.Add(5 * time.Millisecond)
			}

			if len(keys) != 1 || keys[0] != KeyUp {
				t.Errorf("Expected [up], got %v", keys)
			}
			if !in.Up || in.Left {
				t.Errorf("Expected only up held, got %+v", in)
			}
		})
	}
}

func TestReadInputHeldSequenceDoesNotShortenNextTimeout(t *testing.T) {
	s, now := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b")
	ReadInput(s)
	*now = now.Add(escapeTimeout / 2)
	feed(s, "[A")
	if in := ReadInput(s); !in.Pressed(KeyUp) {
		t.Fatalf("Expected up, got %v", in.Keys)
	}

	// A new ESC gets its own full wait
	*now = now.Add(escapeTimeout)
	feed(s, "\x1b")
	if in := ReadInput(s); len(in.Keys) != 0 {
		t.Errorf("Expected new ESC to be held back, got %v", in.Keys)
	}
}

func TestReadInputIgnoresUnboundSequences(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"delete", "\x1b[3~"},
		{"home", "\x1b[H"},
		{"end", "\x1b[F"},
		{"page up", "\x1b[5~"},
		{"F1", "\x1bOP"},
		{"F5", "\x1b[15~"},
		{"all together", "\x1b[3~\x1b[H\x1bOP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := fakeStream(time.Unix(100, 0))
			feed(s, tt.data)

			in := ReadInput(s)
			if len(in.Keys) != 0 {
				t.Errorf("input %q: expected no keys, got %v", tt.data, in.Keys)
			}
			if in.Up || in.Down || in.Left || in.Right || in.Fire {
				t.Errorf("input %q: expected nothing held, got %+v", tt.data, in)
			}
		})
	}
}

func TestReadInputModifiedArrows(t *testing.T) {
	s, _ := fakeStream(time.Unix(100, 0))
	feed(s, "\x1b[1;5A\x1bOD")

	in := ReadInput(s)
	if len(in.Keys) != 2 || in.Keys[0] != KeyUp || in.Keys[1] != KeyLeft {
		t.Errorf("Expected [up left], got %v", in.Keys)
	}
}

// endlessReader yields an unbounded stream of fire presses.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'z'
	}
	return len(p), nil
}

func TestStartStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := StartStream(ctx, bufio.NewReader(endlessReader{}))

	// Let the reader fill the channel, then stop it
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	received := 0
	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case <-s.ch:
			received++
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if limit := cap(s.ch) + 1; received > limit {
		t.Errorf("Expected at most %d buffered bytes after cancel, got %d", limit, received)
	}
}
