package astro

import "fmt"

// OrbitSense selects the prograde or retrograde ISCO root.
type OrbitSense int

const (
	CoRotating OrbitSense = iota
	CounterRotating
)

var orbitSenseNames = map[OrbitSense]string{
	CoRotating:      "co_rotating",
	CounterRotating: "counter_rotating",
}

// OrbitSenses lists every valid orbit sense.
func OrbitSenses() []OrbitSense {
	return []OrbitSense{CoRotating, CounterRotating}
}

// ParseOrbitSense accepts "co_rotating" or "counter_rotating".
func ParseOrbitSense(s string) (OrbitSense, error) {
	switch s {
	case "co_rotating":
		return CoRotating, nil
	case "counter_rotating":
		return CounterRotating, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrbitSense, s)
	}
}

// Valid reports whether o is one of the named senses.
func (o OrbitSense) Valid() bool {
	_, ok := orbitSenseNames[o]
	return ok
}

// String returns the snake_case name used in flags and scenario files.
func (o OrbitSense) String() string {
	if name, ok := orbitSenseNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OrbitSense(%d)", int(o))
}

// MarshalText fails for senses outside the enum.
func (o OrbitSense) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrbitSense, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts the names ParseOrbitSense accepts.
func (o *OrbitSense) UnmarshalText(text []byte) error {
	v, err := ParseOrbitSense(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Set and Type let an OrbitSense be bound directly as a command-line flag.
func (o *OrbitSense) Set(s string) error {
	return o.UnmarshalText([]byte(s))
}

func (o *OrbitSense) Type() string {
	return "orbit"
}
