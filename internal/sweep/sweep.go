package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/san-kum/counterpart/internal/astro"
)

const defaultMinChunk = 64

var ErrGridSize = errors.New("sweep: grid needs at least two points")

type NSBHParams struct {
	MassBH   float64
	MassNS   float64
	RadiusNS float64
	Orbit    astro.OrbitSense
}

type SpinPoint struct {
	Spin        float64
	RIsco       float64
	RDisruption float64
	Disrupted   bool
}

type BNSParams struct {
	MassTOV    float64
	EjectaMass float64
	MinMass    float64
	MaxMass    float64
}

type BNSPoint struct {
	Mass1       float64
	Mass2       float64
	RemnantMass float64
	Collapses   bool
}

type Sweeper struct {
	logger   *slog.Logger
	minChunk int
}

func New(logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{logger: logger, minChunk: defaultMinChunk}
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Spin evaluates the NSBH system at n spins evenly spaced over [0, 1].
func (s *Sweeper) Spin(ctx context.Context, p NSBHParams, n int) ([]SpinPoint, error) {
	if n < 2 {
		return nil, ErrGridSize
	}
	if !p.Orbit.Valid() {
		return nil, fmt.Errorf("%w: %s", astro.ErrInvalidOrbitSense, p.Orbit)
	}

	spins := Linspace(0, 1, n)
	rDis := astro.RDisruption(p.MassBH, p.MassNS, p.RadiusNS)
	points := make([]SpinPoint, n)

	chunks, err := s.run(ctx, n, func(i int) {
		rIsco, _ := astro.RIsco(spins[i], p.MassBH, p.Orbit)
		points[i] = SpinPoint{
			Spin:        spins[i],
			RIsco:       rIsco,
			RDisruption: rDis,
			Disrupted:   rDis >= rIsco,
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("spin sweep complete", "points", n, "chunks", chunks, "orbit", p.Orbit.String())
	return points, nil
}

// BNS evaluates an n x n grid of component masses over [MinMass, MaxMass].
// Points are ordered row-major by Mass1.
func (s *Sweeper) BNS(ctx context.Context, p BNSParams, n int) ([]BNSPoint, error) {
	if n < 2 {
		return nil, ErrGridSize
	}

	masses := Linspace(p.MinMass, p.MaxMass, n)
	points := make([]BNSPoint, n*n)

	chunks, err := s.run(ctx, n*n, func(i int) {
		m1, m2 := masses[i/n], masses[i%n]
		remnant := astro.TotalGravitationalMass(m1, m2, p.EjectaMass)
		points[i] = BNSPoint{
			Mass1:       m1,
			Mass2:       m2,
			RemnantMass: remnant,
			Collapses:   remnant >= astro.CollapseThresholdFactor*p.MassTOV,
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("bns sweep complete", "points", n*n, "chunks", chunks, "mtov", p.MassTOV)
	return points, nil
}

func (s *Sweeper) run(ctx context.Context, n int, fn func(i int)) (int, error) {
	var chunks atomic.Int64
	astro.ParallelFor(n, s.minChunk, func(start, end int) {
		if ctx.Err() != nil {
			return
		}
		chunks.Add(1)
		for i := start; i < end; i++ {
			fn(i)
		}
	})
	if err := ctx.Err(); err != nil {
		return int(chunks.Load()), err
	}
	return int(chunks.Load()), nil
}
