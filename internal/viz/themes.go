package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Positive  lipgloss.Color // positive-frequency traces
	Negative  lipgloss.Color // mirrored negative-frequency traces
	Circle    lipgloss.Color
	Vector    lipgloss.Color
	NegVector lipgloss.Color
	Axis      lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Positive:  lipgloss.Color("#ff3333"), // red
		Negative:  lipgloss.Color("#3377ff"), // blue
		Circle:    lipgloss.Color("#c0c0c0"), // silver
		Vector:    lipgloss.Color("#ff7f0e"), // tab:orange
		NegVector: lipgloss.Color("#17becf"), // tab:cyan
		Axis:      lipgloss.Color("#666666"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888899"),
		Border:    lipgloss.Color("#444466"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Positive:  lipgloss.Color("#ff00ff"),
		Negative:  lipgloss.Color("#00ffff"),
		Circle:    lipgloss.Color("#555577"),
		Vector:    lipgloss.Color("#ffff00"),
		NegVector: lipgloss.Color("#00ff88"),
		Axis:      lipgloss.Color("#444444"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Border:    lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Positive:  lipgloss.Color("#00ff00"), // Green phosphor
		Negative:  lipgloss.Color("#88ff88"),
		Circle:    lipgloss.Color("#005500"),
		Vector:    lipgloss.Color("#ccff00"),
		NegVector: lipgloss.Color("#00cc66"),
		Axis:      lipgloss.Color("#004400"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#008800"),
		Border:    lipgloss.Color("#00aa00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Positive:  lipgloss.Color("#ffd700"),
		Negative:  lipgloss.Color("#00a8cc"),
		Circle:    lipgloss.Color("#4488aa"),
		Vector:    lipgloss.Color("#ff9f43"),
		NegVector: lipgloss.Color("#48dbfb"),
		Axis:      lipgloss.Color("#335577"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#0077be"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// pens maps every canvas pen to a lipgloss style.
func (t Theme) pens() [numPens]lipgloss.Style {
	var s [numPens]lipgloss.Style
	s[PenAxis] = lipgloss.NewStyle().Foreground(t.Axis)
	s[PenPositive] = lipgloss.NewStyle().Foreground(t.Positive)
	s[PenNegative] = lipgloss.NewStyle().Foreground(t.Negative)
	s[PenCircle] = lipgloss.NewStyle().Foreground(t.Circle)
	s[PenVector] = lipgloss.NewStyle().Foreground(t.Vector)
	s[PenNegVector] = lipgloss.NewStyle().Foreground(t.NegVector)
	return s
}
