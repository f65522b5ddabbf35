package format

import (
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// SI prefixes as returned by humanize, in ascending order, with the short
// suffix shown to viewers. Counts past trillions stay in trillions.
var compactUnits = []struct {
	prefix string
	suffix string
}{
	{"", ""},
	{"k", "K"},
	{"M", "M"},
	{"G", "B"},
	{"T", "T"},
}

// Compact shortens a count to a human-scale magnitude, e.g. 1234567 -> "1.2M".
// Mantissas below ten keep one fraction digit, larger ones none.
func Compact(p *message.Printer, n int64) string {
	if n < 1000 {
		return p.Sprint(number.Decimal(n))
	}
	v, prefix := humanize.ComputeSI(float64(n))
	unit := unitIndex(prefix)
	if unit < 0 {
		// Beyond the table: express in the largest unit we name.
		unit = len(compactUnits) - 1
		v = float64(n) / 1e12
	}
	// ComputeSI can land one unit low on exact powers of a thousand.
	for v >= 1000 && unit < len(compactUnits)-1 {
		v, unit = v/1000, unit+1
	}
	v = roundHalfUp(v, fractionDigits(v))
	if v >= 1000 && unit < len(compactUnits)-1 {
		v, unit = v/1000, unit+1
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(fractionDigits(v)))) + compactUnits[unit].suffix
}

func unitIndex(prefix string) int {
	for i, u := range compactUnits {
		if u.prefix == prefix {
			return i
		}
	}
	return -1
}

func fractionDigits(v float64) int {
	if v < 10 {
		return 1
	}
	return 0
}

func roundHalfUp(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Floor(v*scale+0.5) / scale
}
