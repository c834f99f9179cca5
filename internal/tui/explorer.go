package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/counterpart/internal/astro"
	"github.com/san-kum/counterpart/internal/config"
	"github.com/san-kum/counterpart/internal/viz"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

type param struct {
	name string
	step float64
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var nsbhParams = []param{
	{"mbh", 0.1, func(c *config.Config) float64 { return c.NSBH.MassBH }, func(c *config.Config, v float64) { c.NSBH.MassBH = v }},
	{"mns", 0.05, func(c *config.Config) float64 { return c.NSBH.MassNS }, func(c *config.Config, v float64) { c.NSBH.MassNS = v }},
	{"rns", 0.25, func(c *config.Config) float64 { return c.NSBH.RadiusNS }, func(c *config.Config, v float64) { c.NSBH.RadiusNS = v }},
	{"spin", 0.05, func(c *config.Config) float64 { return c.NSBH.Spin }, func(c *config.Config, v float64) { c.NSBH.Spin = v }},
}

var bnsParams = []param{
	{"m1", 0.05, func(c *config.Config) float64 { return c.BNS.Mass1 }, func(c *config.Config, v float64) { c.BNS.Mass1 = v }},
	{"m2", 0.05, func(c *config.Config) float64 { return c.BNS.Mass2 }, func(c *config.Config, v float64) { c.BNS.Mass2 = v }},
	{"mtov", 0.05, func(c *config.Config) float64 { return c.BNS.MassTOV }, func(c *config.Config, v float64) { c.BNS.MassTOV = v }},
	{"ejecta", 0.01, func(c *config.Config) float64 { return c.BNS.EjectaMass }, func(c *config.Config, v float64) { c.BNS.EjectaMass = v }},
}

// Model is the explorer state. Every edit recomputes the verdict.
type Model struct {
	cfg      *config.Config
	renderer *viz.Renderer
	presets  []string
	preset   int
	cursor   int
	editing  bool
	editBuf  string
}

func NewModel(cfg *config.Config, theme viz.Theme) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{
		cfg:      cfg,
		renderer: viz.NewRenderer(theme),
		presets:  config.ListPresets(),
		preset:   -1,
	}
}

func (m Model) Config() *config.Config { return m.cfg }

func (m Model) params() []param {
	if m.cfg.Kind == config.KindBNS {
		return bnsParams
	}
	return nsbhParams
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.editKey(key), nil
	}

	params := m.params()
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		p := params[m.cursor]
		p.set(m.cfg, p.get(m.cfg)-p.step)
	case "right", "l":
		p := params[m.cursor]
		p.set(m.cfg, p.get(m.cfg)+p.step)
	case "o":
		if m.cfg.NSBH.Orbit == astro.CoRotating {
			m.cfg.NSBH.Orbit = astro.CounterRotating
		} else {
			m.cfg.NSBH.Orbit = astro.CoRotating
		}
	case "tab":
		if m.cfg.Kind == config.KindBNS {
			m.cfg.Kind = config.KindNSBH
		} else {
			m.cfg.Kind = config.KindBNS
		}
		m.cursor = 0
	case "s":
		m.cfg.Strict = !m.cfg.Strict
	case "p":
		m.preset = (m.preset + 1) % len(m.presets)
		m.cfg = config.GetPreset(m.presets[m.preset])
		m.cursor = 0
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(params[m.cursor].get(m.cfg), 'f', -1, 64)
	}
	return m, nil
}

func (m Model) editKey(key tea.KeyMsg) Model {
	switch key.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			p := m.params()[m.cursor]
			p.set(m.cfg, v)
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := key.String()
		if len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += s
			}
		}
	}
	return m
}

// Report evaluates the current scenario and renders it.
func (m Model) Report() (string, error) {
	e := m.cfg.Evaluator()
	if m.cfg.Kind == config.KindBNS {
		res, err := e.RemnantSummary(m.cfg.BNS.Mass1, m.cfg.BNS.Mass2, m.cfg.BNS.MassTOV)
		if err != nil {
			return "", err
		}
		return m.renderer.RenderBNS(m.cfg.Name, res), nil
	}
	n := m.cfg.NSBH
	res, err := e.NSBHSummary(n.MassBH, n.MassNS, n.RadiusNS, n.Spin, n.Orbit)
	if err != nil {
		return "", err
	}
	return m.renderer.RenderNSBH(m.cfg.Name, res), nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + cursorStyle.Render("COUNTERPART") + "  " + idleStyle.Render(strings.ToUpper(m.cfg.Kind)))
	if m.cfg.Name != "" {
		b.WriteString(idleStyle.Render(" · " + m.cfg.Name))
	}
	b.WriteString("\n\n")

	for i, p := range m.params() {
		val := fmt.Sprintf("%8.3f", p.get(m.cfg))
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-8s", p.name)), valueStyle.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idleStyle.Render(fmt.Sprintf("%-8s", p.name)), idleStyle.Render(val)))
		}
	}
	if m.cfg.Kind == config.KindNSBH {
		b.WriteString(fmt.Sprintf("    %s %s\n", idleStyle.Render(fmt.Sprintf("%-8s", "orbit")), idleStyle.Render(m.cfg.NSBH.Orbit.String())))
	}
	strict := "off"
	if m.cfg.Strict {
		strict = "on"
	}
	b.WriteString(fmt.Sprintf("    %s %s\n\n", idleStyle.Render(fmt.Sprintf("%-8s", "strict")), idleStyle.Render(strict)))

	report, err := m.Report()
	if err != nil {
		b.WriteString("  " + errStyle.Render(err.Error()) + "\n")
	} else {
		b.WriteString(report + "\n")
	}

	b.WriteString("\n  " + hint("j/k", "select") + hint("h/l", "adjust") + hint("enter", "edit") +
		hint("o", "orbit") + hint("tab", "nsbh/bns") + hint("p", "preset") + hint("s", "strict") + hint("q", "quit") + "\n")
	return b.String()
}

func hint(key, label string) string {
	return keyStyle.Render(key) + idleStyle.Render(" "+label+"  ")
}

func Run(cfg *config.Config, theme viz.Theme) error {
	_, err := tea.NewProgram(NewModel(cfg, theme), tea.WithAltScreen()).Run()
	return err
}
