package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/counterpart/internal/astro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, KindNSBH, cfg.Kind)
	assert.Equal(t, astro.DefaultEjectaMass, cfg.BNS.EjectaMass)
	assert.Equal(t, astro.CoRotating, cfg.NSBH.Orbit)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	data := []byte(`
name: custom
kind: nsbh
strict: true
nsbh:
  mbh: 7.5
  mns: 1.35
  rns: 11.5
  spin: 0.6
  orbit: counter_rotating
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Name)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 7.5, cfg.NSBH.MassBH)
	assert.Equal(t, astro.CounterRotating, cfg.NSBH.Orbit)
	// untouched sections keep defaults
	assert.Equal(t, DefaultMassTOV, cfg.BNS.MassTOV)
}

func TestParse_InvalidOrbit(t *testing.T) {
	_, err := Parse([]byte("kind: nsbh\nnsbh:\n  orbit: sideways\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, astro.ErrInvalidOrbitSense)
}

func TestParse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "kind: bhbh\n"},
		{"negative bh mass", "kind: nsbh\nnsbh:\n  mbh: -1\n"},
		{"spin above one", "kind: nsbh\nnsbh:\n  spin: 1.2\n"},
		{"negative ejecta", "kind: bns\nbns:\n  ejecta: -0.1\n"},
		{"too few sweep points", "kind: bns\nsweep:\n  points: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	cfg := DefaultConfig()
	cfg.Name = "roundtrip"
	cfg.NSBH.Orbit = astro.CounterRotating
	cfg.NSBH.Spin = -0.3

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("GW170817")
	require.NotNil(t, cfg)
	assert.Equal(t, KindBNS, cfg.Kind)
	assert.Equal(t, 1.46, cfg.BNS.Mass1)
	require.NoError(t, cfg.Validate())

	cfg.BNS.Mass1 = 3
	assert.Equal(t, 1.46, Presets["GW170817"].BNS.Mass1, "GetPreset must return a copy")
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("GW000000"))

	_, err := LoadPreset("GW000000")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	require.Len(t, presets, len(Presets))
	assert.IsIncreasing(t, presets)

	for _, name := range presets {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}
}

func TestEvaluator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = true
	cfg.BNS.EjectaMass = 0.02

	e := cfg.Evaluator()
	assert.True(t, e.Strict())
	assert.Equal(t, 0.02, e.EjectaMass())
}
