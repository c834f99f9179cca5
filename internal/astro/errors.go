package astro

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidOrbitSense indicates an orbit sense other than co_rotating
	// or counter_rotating.
	ErrInvalidOrbitSense = errors.New("astro: invalid orbit sense")

	// ErrDomain indicates a NaN or Inf result in strict evaluation.
	ErrDomain = errors.New("astro: result outside real domain")

	// ErrDimensionMismatch indicates batch inputs of different lengths.
	ErrDimensionMismatch = errors.New("astro: dimension mismatch between batch inputs")
)

// DomainError wraps ErrDomain with the operation and inputs that produced it.
type DomainError struct {
	Op     string
	Inputs map[string]float64
	Value  float64
}

func (e *DomainError) Error() string {
	keys := make([]string, 0, len(e.Inputs))
	for k, v := range e.Inputs {
		keys = append(keys, fmt.Sprintf("%s=%g", k, v))
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s(%s) = %g", ErrDomain.Error(), e.Op, strings.Join(keys, ", "), e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
