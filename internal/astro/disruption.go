package astro

import "math"

// RDisruption returns the tidal disruption radius in km of a neutron star of
// mass mNS and radius rNS (km) orbiting a black hole of mass mBH.
func RDisruption(mBH, mNS, rNS float64) float64 {
	return rNS * cbrt(mBH/mNS)
}

// NSBHDisruption reports whether the neutron star is torn apart at or
// outside the black hole's ISCO. NaN on either side compares false.
func NSBHDisruption(mBH, mNS, rNS, spin float64, sense OrbitSense) (bool, error) {
	rDis := RDisruption(mBH, mNS, rNS)
	rIsco, err := RIsco(spin, mBH, sense)
	if err != nil {
		return false, err
	}
	return rDis >= rIsco, nil
}

// CompactnessNS returns G*M/(c^2*R) for a neutron star of mass mNS (solar
// masses) and radius rNS (km).
func CompactnessNS(mNS, rNS float64) float64 {
	return mNS * SolarMassLengthKm / rNS
}

// NSBHResult collects the quantities behind an NSBH disruption verdict.
type NSBHResult struct {
	MassBH      float64    `json:"mbh" yaml:"mbh"`
	MassNS      float64    `json:"mns" yaml:"mns"`
	RadiusNS    float64    `json:"rns" yaml:"rns"`
	Spin        float64    `json:"spin" yaml:"spin"`
	Orbit       OrbitSense `json:"orbit" yaml:"orbit"`
	RIsco       float64    `json:"r_isco_km" yaml:"r_isco_km"`
	RDisruption float64    `json:"r_disruption_km" yaml:"r_disruption_km"`
	Compactness float64    `json:"compactness" yaml:"compactness"`
	Disrupted   bool       `json:"disrupted" yaml:"disrupted"`
}

// Margin is r_dis - r_isco in km; positive means disrupted.
func (r NSBHResult) Margin() float64 {
	return r.RDisruption - r.RIsco
}

// NSBHSummary evaluates an NSBH system and returns every intermediate value.
func NSBHSummary(mBH, mNS, rNS, spin float64, sense OrbitSense) (NSBHResult, error) {
	rIsco, err := RIsco(spin, mBH, sense)
	if err != nil {
		return NSBHResult{}, err
	}
	rDis := RDisruption(mBH, mNS, rNS)
	return NSBHResult{
		MassBH:      mBH,
		MassNS:      mNS,
		RadiusNS:    rNS,
		Spin:        spin,
		Orbit:       sense,
		RIsco:       rIsco,
		RDisruption: rDis,
		Compactness: CompactnessNS(mNS, rNS),
		Disrupted:   rDis >= rIsco,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
