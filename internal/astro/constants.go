package astro

// Physical constants in SI units, matching CODATA 2018 and the IAU 2015
// nominal solar mass.
const (
	SolarMassSI             = 1.988409870698051e30 // kg
	GravitationalConstantSI = 6.6743e-11           // m^3 kg^-1 s^-2
	SpeedOfLightSI          = 299792458.0          // m/s

	// SolarMassLengthKm is G*M_sun/c^2 in kilometres, the geometric length
	// of one solar mass.
	SolarMassLengthKm = SolarMassSI * GravitationalConstantSI / (SpeedOfLightSI * SpeedOfLightSI) / 1000
)

// Empirical fit constants. Preserve exactly.
const (
	// MassConversionCoefficient relates rest and gravitational mass of a
	// single neutron star: m_rest = m_grav + k*m_grav^2.
	MassConversionCoefficient = 0.075

	// DefaultEjectaMass is the rest mass unbound during a BNS merger.
	DefaultEjectaMass = 0.05

	// CollapseThresholdFactor multiplies the TOV mass to give the prompt
	// collapse threshold of a merger remnant.
	CollapseThresholdFactor = 1.2
)
