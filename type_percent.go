package divtrack

import (
	"fmt"
	"math"
)

// Percent is a ratio in percent points, as produced by the yield and return
// computations.
type Percent float64

// Equal compares two percentages within a fixed tolerance; percent values go
// through float arithmetic and are never compared exactly.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

// String formats the percentage rounded to two decimal places.
func (p Percent) String() string { return fmt.Sprintf("%.2f%%", p) }

// SignedString formats the percentage with an explicit sign, and a rounded
// zero as "-". Return columns use it to keep gains apart from noise at a
// glance.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
