package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fourier/internal/config"
)

var presetInfo = map[string]string{
	"cosine":      "single rotating phasor",
	"sine":        "phase-shifted phasor",
	"square":      "odd harmonics, 1/k",
	"square-fine": "31 harmonics, mirrored",
	"triangle":    "odd harmonics, 1/k²",
	"sawtooth":    "all harmonics, alternating",
	"spiral":      "endless free-form chain",
}

const (
	stateMenu = iota
	stateLive
)

type menu struct {
	state, cursor int
	presets       []string
	theme         string
	err           error
	width, height int
	live          Model
}

// NewMenu lists the presets; enter starts the selected one.
func NewMenu(theme string) menu {
	return menu{presets: config.ListPresets(), theme: theme}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
			m.state = stateMenu
			return m, nil
		}
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.start()
		}
	}
	return m, nil
}

func (m menu) start() (tea.Model, tea.Cmd) {
	cfg := config.GetPreset(m.presets[m.cursor])
	if m.theme != "" {
		cfg.Theme = m.theme
	}
	live, err := NewModelFromConfig(cfg)
	if err != nil {
		m.err = err
		return m, nil
	}
	if m.width > 0 {
		live.views.FitTerminal(m.width, m.height)
	}
	// ticks still in flight from the previous animation must not match
	live.tickID = m.live.tickID + 1
	m.live, m.state, m.err = live, stateLive, nil
	return m, m.live.Init()
}

func (m menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}

	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("FOURIER") + "\n    " + sub.Render("epicycle presets") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-12s", name)),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-12s", name)),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusError.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" start  ") + key.Render("esc") + sub.Render(" back  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunMenu runs the preset picker and returns the last animation shown, if any.
func RunMenu(theme string) (Model, error) {
	final, err := tea.NewProgram(NewMenu(theme), tea.WithAltScreen()).Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(menu)
	return m.live, nil
}
