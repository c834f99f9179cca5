package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/counterpart/internal/astro"
	"github.com/san-kum/counterpart/internal/config"
	"github.com/san-kum/counterpart/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func TestExplorer_AdjustParam(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)
	start := m.Config().NSBH.MassBH

	m = press(t, m, runes("l"), runes("l"))
	assert.InDelta(t, start+0.2, m.Config().NSBH.MassBH, 1e-12)

	m = press(t, m, runes("j"), runes("h"))
	assert.InDelta(t, config.DefaultMassNS-0.05, m.Config().NSBH.MassNS, 1e-12)
}

func TestExplorer_EditValue(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)
	m = press(t, m, runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.editing)

	for range m.editBuf {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(t, m, runes("0"), runes("."), runes("9"), runes("x"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editing)
	assert.Equal(t, 0.9, m.Config().NSBH.Spin)
}

func TestExplorer_EditEscapeKeepsValue(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("7"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Equal(t, config.DefaultMassBH, m.Config().NSBH.MassBH)
}

func TestExplorer_ToggleOrbitAndKind(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)

	m = press(t, m, runes("o"))
	assert.Equal(t, astro.CounterRotating, m.Config().NSBH.Orbit)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, config.KindBNS, m.Config().Kind)
	assert.Contains(t, m.View(), "m1")

	m = press(t, m, runes("s"))
	assert.True(t, m.Config().Strict)
}

func TestExplorer_CyclePresets(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)
	m = press(t, m, runes("p"))
	assert.Equal(t, config.ListPresets()[0], m.Config().Name)

	for range config.ListPresets() {
		m = press(t, m, runes("p"))
	}
	assert.Equal(t, config.ListPresets()[0], m.Config().Name)
}

func TestExplorer_ViewShowsVerdict(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NSBH = config.NSBHConfig{MassBH: 5, MassNS: 1.4, RadiusNS: 11, Orbit: astro.CoRotating}
	m := NewModel(cfg, viz.ThemePlain)

	assert.Contains(t, m.View(), "PLUNGES")
}

func TestExplorer_StrictErrorShown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strict = true
	cfg.NSBH.Spin = 1.5
	m := NewModel(cfg, viz.ThemePlain)

	_, err := m.Report()
	require.ErrorIs(t, err, astro.ErrDomain)
	assert.Contains(t, m.View(), "outside real domain")
}

func TestExplorer_Quit(t *testing.T) {
	m := NewModel(nil, viz.ThemePlain)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
