package astro

import "math"

// RestMassFromGravitationalMass converts a neutron-star gravitational mass
// to baryonic rest mass.
func RestMassFromGravitationalMass(gravitationalMass float64) float64 {
	return gravitationalMass + MassConversionCoefficient*gravitationalMass*gravitationalMass
}

// GravitationalMassFromRestMass is the positive-root inverse of
// RestMassFromGravitationalMass. Rest masses below -1/(4k) give NaN.
//
// (-1 + sqrt(1+4km)) / 2k is evaluated as 2m / (1 + sqrt(1+4km)) to avoid
// cancellation for small m. +Inf maps to +Inf.
func GravitationalMassFromRestMass(restMass float64) float64 {
	const k = MassConversionCoefficient
	if math.IsInf(restMass, 1) {
		return restMass
	}
	return 2 * restMass / (1 + math.Sqrt(1+4*k*restMass))
}

// TotalGravitationalMass returns the remnant gravitational mass of a BNS
// merger, conserving rest mass minus the ejecta.
func TotalGravitationalMass(m1, m2, ejectaMass float64) float64 {
	rest1 := RestMassFromGravitationalMass(m1)
	rest2 := RestMassFromGravitationalMass(m2)
	return GravitationalMassFromRestMass(rest1 + rest2 - ejectaMass)
}

// BNSDisruption reports whether the remnant exceeds the prompt-collapse
// threshold CollapseThresholdFactor*mTOV, favouring jet launch.
func BNSDisruption(m1, m2, mTOV, ejectaMass float64) bool {
	return TotalGravitationalMass(m1, m2, ejectaMass) >= CollapseThresholdFactor*mTOV
}

// BNSResult collects the quantities behind a BNS collapse verdict.
type BNSResult struct {
	Mass1         float64 `json:"m1" yaml:"m1"`
	Mass2         float64 `json:"m2" yaml:"m2"`
	MassTOV       float64 `json:"mtov" yaml:"mtov"`
	EjectaMass    float64 `json:"ejecta" yaml:"ejecta"`
	RestMass1     float64 `json:"rest_mass_1" yaml:"rest_mass_1"`
	RestMass2     float64 `json:"rest_mass_2" yaml:"rest_mass_2"`
	TotalRestMass float64 `json:"total_rest_mass" yaml:"total_rest_mass"`
	RemnantMass   float64 `json:"remnant_mass" yaml:"remnant_mass"`
	Threshold     float64 `json:"threshold" yaml:"threshold"`
	Collapses     bool    `json:"collapses" yaml:"collapses"`
}

// RemnantSummary evaluates a BNS system and returns every intermediate value.
func RemnantSummary(m1, m2, mTOV, ejectaMass float64) BNSResult {
	rest1 := RestMassFromGravitationalMass(m1)
	rest2 := RestMassFromGravitationalMass(m2)
	total := rest1 + rest2 - ejectaMass
	remnant := GravitationalMassFromRestMass(total)
	threshold := CollapseThresholdFactor * mTOV
	return BNSResult{
		Mass1:         m1,
		Mass2:         m2,
		MassTOV:       mTOV,
		EjectaMass:    ejectaMass,
		RestMass1:     rest1,
		RestMass2:     rest2,
		TotalRestMass: total,
		RemnantMass:   remnant,
		Threshold:     threshold,
		Collapses:     remnant >= threshold,
	}
}
