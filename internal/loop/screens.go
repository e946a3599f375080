package loop

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/nightmare/internal/draw"
)

// panelWidth is the width of the side panel including its border.
const panelWidth = 28

// Palette shared by the terminal screens.
var (
	colorAccent = lipgloss.Color("#c084fc")
	colorScore  = lipgloss.Color("#4ade80")
	colorHeart  = lipgloss.Color("#ef4444")
	colorMuted  = lipgloss.Color("#6b7280")
	colorText   = lipgloss.Color("#e5e7eb")
	colorSelect = lipgloss.Color("#ff77ff")
)

// screens renders the terminal UI with lipgloss.
type screens struct {
	box      lipgloss.Style
	title    lipgloss.Style
	heading  lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	selected lipgloss.Style
	score    lipgloss.Style
	heart    lipgloss.Style
	renderer *lipgloss.Renderer
}

// newScreens builds the styles for output to w. The colour profile is forced
// to truecolor because w is often an SSH session lipgloss cannot probe.
func newScreens(w io.Writer) *screens {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	return &screens{
		renderer: r,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		title:    r.NewStyle().Foreground(colorAccent).Bold(true),
		heading:  r.NewStyle().Foreground(colorText).Bold(true),
		text:     r.NewStyle().Foreground(colorText),
		dim:      r.NewStyle().Foreground(colorMuted),
		selected: r.NewStyle().Foreground(colorSelect).Bold(true),
		score:    r.NewStyle().Foreground(colorScore).Bold(true),
		heart:    r.NewStyle().Foreground(colorHeart),
	}
}

// Menu renders the main menu.
func (s *screens) Menu(v View) string {
	var b strings.Builder
	b.WriteString(s.title.Render(Title))
	b.WriteString("\n")
	b.WriteString(s.dim.Render("a bullet-hell arcade game"))
	b.WriteString("\n\n")

	for i, item := range MenuItems {
		if i == v.MenuIndex {
			b.WriteString(s.selected.Render("▶ " + item.String()))
		} else {
			b.WriteString(s.text.Render("  " + item.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.dim.Render("↑/↓ select  Enter confirm  Q quit"))
	return s.box.Render(b.String())
}

// Instructions renders the controls and the enemy guide.
func (s *screens) Instructions() string {
	var b strings.Builder
	b.WriteString(s.title.Render("Instructions"))
	b.WriteString("\n\n")

	b.WriteString(s.heading.Render("Controls"))
	b.WriteString("\n")
	for _, c := range Controls {
		fmt.Fprintf(&b, "%s %s\n", s.selected.Render(fmt.Sprintf("%-14s", c.Keys)), s.text.Render(c.Action))
	}

	b.WriteString("\n")
	b.WriteString(s.heading.Render("Enemies"))
	b.WriteString("\n")
	for _, e := range Enemies {
		label := s.renderer.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(draw.ToHex(e.Kind.Color))).
			Render(fmt.Sprintf(" %-2s ", e.Kind.Label))
		fmt.Fprintf(&b, "%s %s\n", label, s.text.Render(e.Description))
	}

	b.WriteString("\n")
	b.WriteString(s.dim.Render("Esc back"))
	return s.box.Render(b.String())
}

// Settings renders the audio settings.
func (s *screens) Settings(v View) string {
	var b strings.Builder
	b.WriteString(s.title.Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		row   SettingsRow
		label string
		value string
	}{
		{SettingsVolume, "Music volume", fmt.Sprintf("◀ %3d%% ▶ %s", v.Volume, volumeBar(v.Volume))},
		{SettingsMute, "Mute", checkbox(v.Muted)},
		{SettingsBack, "Back", ""},
	}
	for _, r := range rows {
		style := s.text
		marker := "  "
		if r.row == v.SettingsRow {
			style = s.selected
			marker = "▶ "
		}
		line := fmt.Sprintf("%s%-13s %s", marker, r.label, r.value)
		b.WriteString(style.Render(strings.TrimRight(line, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.dim.Render("←/→ volume  M mute  Esc back"))
	return s.box.Render(b.String())
}

// Panel renders the in-game side panel, height rows tall.
func (s *screens) Panel(v View, height int) string {
	inner := panelWidth - 4 // border and padding
	var b strings.Builder

	b.WriteString(s.title.Width(inner).Render("Touhou: " + Title))
	b.WriteString("\n\n")

	b.WriteString(s.heading.Render("Score"))
	b.WriteString("\n")
	b.WriteString(s.score.Render(fmt.Sprintf("%d", v.Score)))
	b.WriteString("\n\n")

	b.WriteString(s.heading.Render("Lives"))
	b.WriteString("\n")
	b.WriteString(s.hearts(v.Lives, v.MaxLives))
	b.WriteString("\n\n")

	b.WriteString(s.heading.Render("Audio"))
	b.WriteString("\n")
	if v.Muted {
		b.WriteString(s.dim.Render("muted"))
	} else {
		b.WriteString(s.text.Render(fmt.Sprintf("%3d%% %s", v.Volume, volumeBar(v.Volume))))
	}
	b.WriteString("\n\n")

	b.WriteString(s.dim.Render("Z fire  M mute\n+/- volume  Esc menu"))

	style := s.box.Width(panelWidth - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(b.String())
}

// GameOver renders the overlay shown over the frozen playfield.
func (s *screens) GameOver(v View) string {
	var b strings.Builder
	b.WriteString(s.title.Render("Game Over"))
	b.WriteString("\n\n")
	b.WriteString(s.text.Render("Final score: "))
	b.WriteString(s.score.Render(fmt.Sprintf("%d", v.Score)))
	b.WriteString("\n\n")
	b.WriteString(s.selected.Render("R / Enter"))
	b.WriteString(s.text.Render("  retry"))
	b.WriteString("\n")
	b.WriteString(s.selected.Render("Esc"))
	b.WriteString(s.text.Render("        main menu"))
	return s.box.Render(b.String())
}

// TooSmall asks for a bigger terminal.
func (s *screens) TooSmall(width, height int) string {
	return s.text.Render(fmt.Sprintf("Terminal too small (%dx%d).\nPlease enlarge the window.", width, height))
}

func (s *screens) hearts(lives, slots int) string {
	var b strings.Builder
	for i := 0; i < slots; i++ {
		if i < lives {
			b.WriteString(s.heart.Render("♥"))
		} else {
			b.WriteString(s.dim.Render("♡"))
		}
		if i < slots-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// volumeBar draws volume as ten cells.
func volumeBar(volume int) string {
	filled := (volume + 5) / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("■", filled) + strings.Repeat("□", 10-filled)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
