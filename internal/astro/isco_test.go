package astro

import (
	"errors"
	"math"
	"testing"
)

func TestRIscoGeometric_Schwarzschild(t *testing.T) {
	for _, mass := range []float64{1.0, 3.0, 5.0, 10.0, 42.5} {
		for _, sense := range OrbitSenses() {
			r, err := RIscoGeometric(0, mass, sense)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(r-6*mass) > 1e-9*mass {
				t.Errorf("mass %v %s: got %v, want %v", mass, sense, r, 6*mass)
			}
		}
	}
}

func TestRIscoGeometric_Extremal(t *testing.T) {
	tests := []struct {
		sense    OrbitSense
		mass     float64
		expected float64
	}{
		{CoRotating, 1.0, 1.0},
		{CoRotating, 7.0, 7.0},
		{CounterRotating, 1.0, 9.0},
		{CounterRotating, 7.0, 63.0},
	}

	for _, tt := range tests {
		r, err := RIscoGeometric(1, tt.mass, tt.sense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(r-tt.expected) > 1e-9 {
			t.Errorf("RIscoGeometric(1, %v, %s) = %v, want %v", tt.mass, tt.sense, r, tt.expected)
		}
	}
}

func TestRIscoGeometric_OrderedBySense(t *testing.T) {
	for _, spin := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		co, _ := RIscoGeometric(spin, 1, CoRotating)
		counter, _ := RIscoGeometric(spin, 1, CounterRotating)
		if !(co < 6 && 6 < counter) {
			t.Errorf("spin %v: expected co %v < 6 < counter %v", spin, co, counter)
		}
	}
}

func TestRIsco_Kilometres(t *testing.T) {
	r, err := RIsco(0, 5, CoRotating)
	if err != nil {
		t.Fatal(err)
	}
	expected := 30 * SolarMassLengthKm
	if math.Abs(r-expected) > 1e-9 {
		t.Errorf("got %v, want %v", r, expected)
	}
	if math.Abs(r-44.3) > 0.1 {
		t.Errorf("expected about 44.3 km, got %v", r)
	}
}

func TestSolarMassLength(t *testing.T) {
	if math.Abs(SolarMassLengthKm-1.4766250) > 1e-6 {
		t.Errorf("G*M_sun/c^2 = %v km, want 1.476625", SolarMassLengthKm)
	}
	if math.Abs(GeometricToKm(1)-SolarMassLengthKm) > 1e-12 {
		t.Errorf("GeometricToKm(1) = %v", GeometricToKm(1))
	}
}

func TestRIsco_InvalidOrbitSense(t *testing.T) {
	_, err := RIsco(0.5, 5, OrbitSense(7))
	if !errors.Is(err, ErrInvalidOrbitSense) {
		t.Errorf("expected ErrInvalidOrbitSense, got %v", err)
	}
}

func TestRIsco_UnphysicalSpinIsNaN(t *testing.T) {
	r, err := RIsco(1.5, 5, CoRotating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(r) {
		t.Errorf("expected NaN for spin 1.5, got %v", r)
	}

	r, _ = RIsco(0.5, 0, CoRotating)
	if !math.IsNaN(r) {
		t.Errorf("expected NaN for zero mass, got %v", r)
	}
}
