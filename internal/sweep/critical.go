package sweep

import (
	"github.com/san-kum/counterpart/internal/astro"
)

const (
	criticalTolerance = 1e-10
	maxBisections     = 200
)

// CriticalSpin finds the spin in [0, 1] at which the NSBH verdict flips.
// For co-rotating orbits the ISCO shrinks with spin, so the result is the
// minimum spin that disrupts; for counter-rotating orbits it is the maximum.
// ok is false when the verdict is the same at both ends of the range.
func CriticalSpin(p NSBHParams) (spin float64, ok bool, err error) {
	at := func(s float64) (bool, error) {
		return astro.NSBHDisruption(p.MassBH, p.MassNS, p.RadiusNS, s, p.Orbit)
	}

	lo, hi := 0.0, 1.0
	loVal, err := at(lo)
	if err != nil {
		return 0, false, err
	}
	hiVal, err := at(hi)
	if err != nil {
		return 0, false, err
	}
	if loVal == hiVal {
		return 0, false, nil
	}

	for i := 0; i < maxBisections && hi-lo > criticalTolerance; i++ {
		mid := 0.5 * (lo + hi)
		midVal, _ := at(mid)
		if midVal == loVal {
			lo = mid
		} else {
			hi = mid
		}
	}

	// return the side of the bracket where the star is disrupted
	if loVal {
		return lo, true, nil
	}
	return hi, true, nil
}

// CriticalTOV returns the largest TOV mass for which a BNS with the given
// component masses still collapses promptly.
func CriticalTOV(m1, m2, ejectaMass float64) float64 {
	return astro.TotalGravitationalMass(m1, m2, ejectaMass) / astro.CollapseThresholdFactor
}
