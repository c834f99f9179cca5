package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/san-kum/counterpart/internal/astro"
	"gopkg.in/yaml.v3"
)

const (
	KindNSBH = "nsbh"
	KindBNS  = "bns"
)

const (
	DefaultMassBH   = 5.0
	DefaultMassNS   = 1.4
	DefaultRadiusNS = 12.0
	DefaultMass1    = 1.4
	DefaultMass2    = 1.4
	DefaultMassTOV  = 2.17
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind" validate:"required,oneof=nsbh bns"`
	Strict bool        `yaml:"strict"`
	NSBH   NSBHConfig  `yaml:"nsbh"`
	BNS    BNSConfig   `yaml:"bns"`
	Sweep  SweepConfig `yaml:"sweep"`
}

type NSBHConfig struct {
	MassBH   float64          `yaml:"mbh" validate:"gt=0"`
	MassNS   float64          `yaml:"mns" validate:"gt=0"`
	RadiusNS float64          `yaml:"rns" validate:"gt=0"`
	Spin     float64          `yaml:"spin" validate:"gte=-1,lte=1"`
	Orbit    astro.OrbitSense `yaml:"orbit"`
}

type BNSConfig struct {
	Mass1      float64 `yaml:"m1" validate:"gt=0"`
	Mass2      float64 `yaml:"m2" validate:"gt=0"`
	MassTOV    float64 `yaml:"mtov" validate:"gt=0"`
	EjectaMass float64 `yaml:"ejecta" validate:"gte=0"`
}

type SweepConfig struct {
	Points int `yaml:"points" validate:"gte=2,lte=100000"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind: KindNSBH,
		NSBH: NSBHConfig{
			MassBH:   DefaultMassBH,
			MassNS:   DefaultMassNS,
			RadiusNS: DefaultRadiusNS,
			Orbit:    astro.CoRotating,
		},
		BNS: BNSConfig{
			Mass1:      DefaultMass1,
			Mass2:      DefaultMass2,
			MassTOV:    DefaultMassTOV,
			EjectaMass: astro.DefaultEjectaMass,
		},
		Sweep: SweepConfig{Points: 101},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks physical ranges. The formula library itself never does.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	if !c.NSBH.Orbit.Valid() {
		return fmt.Errorf("config: %w: %s", astro.ErrInvalidOrbitSense, c.NSBH.Orbit)
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Evaluator builds the formula evaluator this scenario asks for.
func (c *Config) Evaluator() *astro.Evaluator {
	return astro.NewEvaluator(astro.WithStrict(c.Strict), astro.WithEjectaMass(c.BNS.EjectaMass))
}
