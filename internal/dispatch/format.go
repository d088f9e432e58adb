package dispatch

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders f with the shortest digits that round-trip.
// Values whose decimal exponent lies in [-4, 16) use fixed notation and
// always carry a fractional part ("2.0"); others use exponent notation
// ("1e-05", "1e+16").
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if f != 0 {
		exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}
