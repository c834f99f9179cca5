package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for reports.
type Theme struct {
	Name    string
	Primary lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#00ccff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888899"),
		Border:  lipgloss.Color("#444466"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#00cc00"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemePlain = Theme{
		Name:    "plain",
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

var AllThemes = []Theme{ThemeOcean, ThemeRetroGreen, ThemePlain}

func ThemeByName(name string) (Theme, bool) {
	for _, t := range AllThemes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeOcean, false
}
