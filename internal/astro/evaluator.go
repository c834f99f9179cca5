package astro

// Evaluator wraps the package functions with a configurable ejecta mass and
// an optional strict mode. In strict mode any NaN or Inf result is reported
// as a *DomainError instead of being returned.
//
// The zero value is lenient and uses DefaultEjectaMass.
type Evaluator struct {
	strict    bool
	ejecta    float64
	ejectaSet bool
}

type EvaluatorOption func(*Evaluator)

// WithStrict turns non-finite results into *DomainError.
func WithStrict(strict bool) EvaluatorOption {
	return func(e *Evaluator) { e.strict = strict }
}

// WithEjectaMass overrides DefaultEjectaMass. Zero is a valid ejecta mass.
func WithEjectaMass(m float64) EvaluatorOption {
	return func(e *Evaluator) {
		e.ejecta = m
		e.ejectaSet = true
	}
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Strict() bool { return e.strict }

// EjectaMass is the rest mass removed before the BNS remnant is formed.
func (e *Evaluator) EjectaMass() float64 {
	if !e.ejectaSet {
		return DefaultEjectaMass
	}
	return e.ejecta
}

func (e *Evaluator) check(op string, value float64, inputs map[string]float64) (float64, error) {
	if e.strict && !isFinite(value) {
		return value, &DomainError{Op: op, Inputs: inputs, Value: value}
	}
	return value, nil
}

// RIsco returns the ISCO radius in km.
func (e *Evaluator) RIsco(spin, mass float64, sense OrbitSense) (float64, error) {
	r, err := RIsco(spin, mass, sense)
	if err != nil {
		return r, err
	}
	return e.check("r_isco", r, map[string]float64{"spin": spin, "mass": mass})
}

// RDisruption returns the tidal disruption radius in km.
func (e *Evaluator) RDisruption(mBH, mNS, rNS float64) (float64, error) {
	return e.check("r_disruption", RDisruption(mBH, mNS, rNS),
		map[string]float64{"mbh": mBH, "mns": mNS, "rns": rNS})
}

// NSBHDisruption reports the NSBH verdict, failing in strict mode when
// either radius is non-finite.
func (e *Evaluator) NSBHDisruption(mBH, mNS, rNS, spin float64, sense OrbitSense) (bool, error) {
	res, err := e.NSBHSummary(mBH, mNS, rNS, spin, sense)
	if err != nil {
		return false, err
	}
	return res.Disrupted, nil
}

func (e *Evaluator) NSBHSummary(mBH, mNS, rNS, spin float64, sense OrbitSense) (NSBHResult, error) {
	res, err := NSBHSummary(mBH, mNS, rNS, spin, sense)
	if err != nil {
		return res, err
	}
	if _, err := e.check("r_isco", res.RIsco, map[string]float64{"spin": spin, "mass": mBH}); err != nil {
		return res, err
	}
	if _, err := e.check("r_disruption", res.RDisruption,
		map[string]float64{"mbh": mBH, "mns": mNS, "rns": rNS}); err != nil {
		return res, err
	}
	return res, nil
}

func (e *Evaluator) RestMassFromGravitationalMass(m float64) (float64, error) {
	return e.check("rest_mass_from_gravitational_mass", RestMassFromGravitationalMass(m),
		map[string]float64{"gravitational_mass": m})
}

// GravitationalMassFromRestMass fails in strict mode below -1/(4k).
func (e *Evaluator) GravitationalMassFromRestMass(m float64) (float64, error) {
	return e.check("gravitational_mass_from_rest_mass", GravitationalMassFromRestMass(m),
		map[string]float64{"rest_mass": m})
}

// TotalGravitationalMass uses the evaluator's ejecta mass.
func (e *Evaluator) TotalGravitationalMass(m1, m2 float64) (float64, error) {
	return e.check("total_gravitational_mass", TotalGravitationalMass(m1, m2, e.EjectaMass()),
		map[string]float64{"m1": m1, "m2": m2, "ejecta": e.EjectaMass()})
}

func (e *Evaluator) BNSDisruption(m1, m2, mTOV float64) (bool, error) {
	res, err := e.RemnantSummary(m1, m2, mTOV)
	if err != nil {
		return false, err
	}
	return res.Collapses, nil
}

// RemnantSummary checks both the remnant mass and the collapse threshold.
func (e *Evaluator) RemnantSummary(m1, m2, mTOV float64) (BNSResult, error) {
	res := RemnantSummary(m1, m2, mTOV, e.EjectaMass())
	if _, err := e.check("total_gravitational_mass", res.RemnantMass,
		map[string]float64{"m1": m1, "m2": m2, "ejecta": e.EjectaMass()}); err != nil {
		return res, err
	}
	if _, err := e.check("collapse_threshold", res.Threshold, map[string]float64{"mtov": mTOV}); err != nil {
		return res, err
	}
	return res, nil
}
