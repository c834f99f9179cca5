package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	subtle   lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	warn     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label:    lipgloss.NewStyle().Foreground(t.Muted),
		value:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		positive: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		negative: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		warn:     lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// marginBar draws a centred bar for a signed fraction in [-1, 1]: filled
// to the right when positive, to the left when negative.
func (s styles) marginBar(frac float64, width int) string {
	half := width / 2
	n := int(frac * float64(half))
	if n > half {
		n = half
	}
	if n < -half {
		n = -half
	}

	var left, right string
	if n >= 0 {
		left = strings.Repeat("░", half)
		right = s.positive.Render(strings.Repeat("█", n)) + strings.Repeat("░", half-n)
	} else {
		left = strings.Repeat("░", half+n) + s.negative.Render(strings.Repeat("█", -n))
		right = strings.Repeat("░", half)
	}
	return left + "│" + right
}

// separator draws a decorative horizontal rule.
func (s styles) separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}
