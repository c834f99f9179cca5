// Package astro provides closed-form compact-binary quantities used in
// gravitational-wave electromagnetic counterpart modeling.
//
// The package exposes pure functions over float64 inputs:
//
//   - [RIsco]: innermost stable circular orbit of a Kerr black hole (km)
//   - [RDisruption]: tidal disruption radius of a neutron star (km)
//   - [NSBHDisruption]: whether a neutron star is disrupted outside the ISCO
//   - [RestMassFromGravitationalMass] / [GravitationalMassFromRestMass]
//   - [TotalGravitationalMass]: remnant mass of a BNS merger
//   - [BNSDisruption]: whether a BNS remnant collapses promptly
//
// Masses are in solar masses, radii in kilometres, spin is the
// dimensionless a/M. Inputs are never clamped: unphysical values propagate
// as NaN following IEEE 754 semantics. Use [Evaluator] with Strict set to
// turn NaN/Inf results into a [DomainError].
//
// # Example
//
//	rIsco, _ := astro.RIsco(0.7, 8.0, astro.CoRotating)
//	rDis := astro.RDisruption(8.0, 1.4, 12.0)
//	disrupted := rDis >= rIsco
//
// # Thread Safety
//
// All functions read only constants and their arguments and are safe for
// concurrent use. The *Batch helpers split work across goroutines.
package astro
