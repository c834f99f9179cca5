package astro

import (
	"fmt"
	"math"
)

// RIscoGeometric returns the Bardeen-Press-Teukolsky ISCO radius in units of
// G*M_sun/c^2. Spin and mass are not range-checked; spins outside [-1, 1]
// produce NaN.
func RIscoGeometric(spin, mass float64, sense OrbitSense) (float64, error) {
	aTilde := spin * mass
	ratio := aTilde / mass

	z1 := 1 + cbrt(1-ratio*ratio)*(cbrt(1+ratio)+cbrt(1-ratio))
	z2 := math.Sqrt(3*ratio*ratio + z1*z1)
	root := math.Sqrt((3 - z1) * (3 + z1 + 2*z2))

	switch sense {
	case CoRotating:
		return mass * (3 + z2 - root), nil
	case CounterRotating:
		return mass * (3 + z2 + root), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %s", ErrInvalidOrbitSense, sense)
	}
}

// RIsco returns the ISCO radius of a black hole of the given mass (solar
// masses) and dimensionless spin, in kilometres.
func RIsco(spin, mass float64, sense OrbitSense) (float64, error) {
	r, err := RIscoGeometric(spin, mass, sense)
	if err != nil {
		return r, err
	}
	return GeometricToKm(r), nil
}

// GeometricToKm converts a length in units of G*M_sun/c^2 to kilometres.
func GeometricToKm(r float64) float64 {
	rSI := r * SolarMassSI * GravitationalConstantSI / (SpeedOfLightSI * SpeedOfLightSI)
	return rSI / 1000
}

// cbrt is x^(1/3) with NaN for negative x, unlike math.Cbrt.
func cbrt(x float64) float64 {
	return math.Pow(x, 1.0/3.0)
}
