package colorspace

import "fmt"

// White is a CIE reference white.
type White int

const (
	// D50 is the horizon-light reference white.
	D50 White = iota
	// D65 is the noon-daylight reference white.
	D65
)

// Tristimulus returns the XYZ tristimulus values of w, scaled so Y = 100.
func (w White) Tristimulus() (x, y, z float64) {
	switch w {
	case D50:
		return 96.4212, 100.0, 82.5188
	default:
		return 95.0489, 100.0, 108.8840
	}
}

// String returns the name of the reference white.
func (w White) String() string {
	switch w {
	case D50:
		return "D50"
	case D65:
		return "D65"
	default:
		return fmt.Sprintf("White(%d)", int(w))
	}
}

// ParseWhite parses "D50" or "D65".
func ParseWhite(s string) (White, error) {
	switch s {
	case "D50", "d50":
		return D50, nil
	case "D65", "d65":
		return D65, nil
	}
	return 0, fmt.Errorf("colorspace: unknown reference white %q", s)
}
