package sweep_test

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/counterpart/internal/astro"
	"github.com/san-kum/counterpart/internal/sweep"
)

var _ = Describe("Linspace", func() {
	It("includes both endpoints", func() {
		xs := sweep.Linspace(0, 1, 5)
		Expect(xs).To(HaveLen(5))
		Expect(xs[0]).To(Equal(0.0))
		Expect(xs[4]).To(Equal(1.0))
		Expect(xs[2]).To(BeNumerically("~", 0.5, 1e-15))
	})

	It("handles degenerate sizes", func() {
		Expect(sweep.Linspace(0, 1, 0)).To(BeNil())
		Expect(sweep.Linspace(3, 4, 1)).To(Equal([]float64{3}))
	})
})

var _ = Describe("Sweeper", func() {
	var s *sweep.Sweeper

	BeforeEach(func() {
		s = sweep.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Spin", func() {
		params := sweep.NSBHParams{MassBH: 5, MassNS: 1.4, RadiusNS: 11, Orbit: astro.CoRotating}

		It("matches the scalar formulas at every point", func() {
			points, err := s.Spin(context.Background(), params, 501)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(501))

			for _, p := range points {
				want, _ := astro.RIsco(p.Spin, 5, astro.CoRotating)
				Expect(p.RIsco).To(Equal(want))
				Expect(p.Disrupted).To(Equal(p.RDisruption >= p.RIsco))
			}
		})

		It("starts at the Schwarzschild radius and shrinks with prograde spin", func() {
			points, err := s.Spin(context.Background(), params, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(points[0].RIsco).To(BeNumerically("~", 30*astro.SolarMassLengthKm, 1e-9))
			for i := 1; i < len(points); i++ {
				Expect(points[i].RIsco).To(BeNumerically("<", points[i-1].RIsco))
			}
		})

		It("rejects an invalid orbit sense", func() {
			bad := params
			bad.Orbit = astro.OrbitSense(4)
			_, err := s.Spin(context.Background(), bad, 10)
			Expect(err).To(MatchError(astro.ErrInvalidOrbitSense))
		})

		It("rejects grids with fewer than two points", func() {
			_, err := s.Spin(context.Background(), params, 1)
			Expect(err).To(MatchError(sweep.ErrGridSize))
		})

		It("returns the context error when cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := s.Spin(ctx, params, 1000)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("BNS", func() {
		params := sweep.BNSParams{MassTOV: 2.17, EjectaMass: astro.DefaultEjectaMass, MinMass: 1.0, MaxMass: 2.0}

		It("evaluates the full grid row-major", func() {
			points, err := s.BNS(context.Background(), params, 21)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(21 * 21))

			Expect(points[0].Mass1).To(Equal(1.0))
			Expect(points[0].Mass2).To(Equal(1.0))
			Expect(points[1].Mass2).To(BeNumerically("~", 1.05, 1e-12))
			Expect(points[len(points)-1].Mass1).To(Equal(2.0))

			for _, p := range points {
				Expect(p.Collapses).To(Equal(astro.BNSDisruption(p.Mass1, p.Mass2, 2.17, astro.DefaultEjectaMass)))
			}
		})

		It("is symmetric in the component masses", func() {
			n := 9
			points, err := s.BNS(context.Background(), params, n)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					Expect(points[i*n+j].RemnantMass).To(BeNumerically("~", points[j*n+i].RemnantMass, 1e-12))
				}
			}
		})

		It("finds light binaries stable and heavy binaries collapsing", func() {
			points, err := s.BNS(context.Background(), params, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(points[0].Collapses).To(BeFalse())
			Expect(points[len(points)-1].Collapses).To(BeTrue())
		})
	})
})

var _ = Describe("CriticalSpin", func() {
	It("finds the prograde spin where disruption starts", func() {
		p := sweep.NSBHParams{MassBH: 5, MassNS: 1.4, RadiusNS: 11, Orbit: astro.CoRotating}
		spin, ok, err := sweep.CriticalSpin(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(spin).To(BeNumerically(">", 0))
		Expect(spin).To(BeNumerically("<", 1))

		disrupted, _ := astro.NSBHDisruption(5, 1.4, 11, spin, astro.CoRotating)
		Expect(disrupted).To(BeTrue())
		below, _ := astro.NSBHDisruption(5, 1.4, 11, spin-1e-6, astro.CoRotating)
		Expect(below).To(BeFalse())
	})

	It("finds the retrograde spin where disruption stops", func() {
		p := sweep.NSBHParams{MassBH: 2.5, MassNS: 1.2, RadiusNS: 20, Orbit: astro.CounterRotating}
		spin, ok, err := sweep.CriticalSpin(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		disrupted, _ := astro.NSBHDisruption(2.5, 1.2, 20, spin, astro.CounterRotating)
		Expect(disrupted).To(BeTrue())
		above, _ := astro.NSBHDisruption(2.5, 1.2, 20, spin+1e-6, astro.CounterRotating)
		Expect(above).To(BeFalse())
	})

	It("reports no crossing when the verdict never changes", func() {
		p := sweep.NSBHParams{MassBH: 5, MassNS: 1.4, RadiusNS: 11, Orbit: astro.CounterRotating}
		_, ok, err := sweep.CriticalSpin(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("propagates an invalid orbit sense", func() {
		p := sweep.NSBHParams{MassBH: 5, MassNS: 1.4, RadiusNS: 11, Orbit: astro.OrbitSense(3)}
		_, _, err := sweep.CriticalSpin(p)
		Expect(err).To(MatchError(astro.ErrInvalidOrbitSense))
	})
})

var _ = Describe("CriticalTOV", func() {
	It("sits on the collapse boundary", func() {
		mtov := sweep.CriticalTOV(1.4, 1.4, astro.DefaultEjectaMass)
		Expect(astro.BNSDisruption(1.4, 1.4, mtov*(1-1e-9), astro.DefaultEjectaMass)).To(BeTrue())
		Expect(astro.BNSDisruption(1.4, 1.4, mtov*(1+1e-9), astro.DefaultEjectaMass)).To(BeFalse())
	})
})
