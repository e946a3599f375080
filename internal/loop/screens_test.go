package loop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScreensMenu(t *testing.T) {
	s := newScreens(&bytes.Buffer{})
	out := s.Menu(View{MenuIndex: 2})

	for _, item := range MenuItems {
		if !strings.Contains(out, item.String()) {
			t.Errorf("Expected menu to list %q", item)
		}
	}
	if !strings.Contains(out, "▶ Settings") {
		t.Error("Expected Settings to be selected")
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("Expected styled output")
	}
}

func TestScreensInstructions(t *testing.T) {
	s := newScreens(&bytes.Buffer{})
	out := s.Instructions()

	for _, want := range []string{"Controls", "Enemies", "fire", "01", "Θ", "{}", "spiral"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected instructions to mention %q", want)
		}
	}
}

func TestScreensSettings(t *testing.T) {
	s := newScreens(&bytes.Buffer{})

	out := s.Settings(View{Volume: 35, Muted: true, SettingsRow: SettingsMute})
	if !strings.Contains(out, " 35%") {
		t.Error("Expected the volume value")
	}
	if !strings.Contains(out, "[x]") {
		t.Error("Expected the mute box checked")
	}
	if !strings.Contains(out, "▶ Mute") {
		t.Error("Expected the mute row selected")
	}
}

func TestScreensPanel(t *testing.T) {
	s := newScreens(&bytes.Buffer{})
	out := s.Panel(View{Score: 1200, Lives: 2, MaxLives: 3, Volume: 50}, 40)

	if !strings.Contains(out, "1200") {
		t.Error("Expected the score")
	}
	if n := strings.Count(out, "♥"); n != 2 {
		t.Errorf("Expected 2 full hearts, got %d", n)
	}
	if n := strings.Count(out, "♡"); n != 1 {
		t.Errorf("Expected 1 empty heart, got %d", n)
	}
	if w := lipgloss.Width(out); w != panelWidth {
		t.Errorf("Expected panel width %d, got %d", panelWidth, w)
	}
	if h := lipgloss.Height(out); h < 40 {
		t.Errorf("Expected panel to fill the height, got %d", h)
	}

	muted := s.Panel(View{Lives: 3, MaxLives: 3, Muted: true}, 40)
	if !strings.Contains(muted, "muted") {
		t.Error("Expected muted audio state")
	}
}

func TestScreensGameOver(t *testing.T) {
	s := newScreens(&bytes.Buffer{})
	out := s.GameOver(View{Score: 700})
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "700") {
		t.Error("Expected title and final score")
	}
}

func TestVolumeBar(t *testing.T) {
	tests := map[int]string{
		0:   "□□□□□□□□□□",
		50:  "■■■■■□□□□□",
		100: "■■■■■■■■■■",
		44:  "■■■■□□□□□□",
	}
	for volume, want := range tests {
		if got := volumeBar(volume); got != want {
			t.Errorf("volumeBar(%d) = %s, want %s", volume, got, want)
		}
	}
}
