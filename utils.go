package summarize

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// EPS is the tolerance for treating two printed frequencies as
// degenerate
const EPS = 1e-8

// parseFloat parses s as a float64, returning BadFloat on failure
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return BadFloat
	}
	return v
}

// parseFortran is like parseFloat but also accepts Fortran-style
// exponents like 0.123D-04
func parseFortran(s string) float64 {
	return parseFloat(strings.Replace(s, "D", "E", -1))
}

// toFloat converts a list of strings to float64s using parseFloat
func toFloat(strs []string) []float64 {
	ret := make([]float64, len(strs))
	for i, s := range strs {
		ret[i] = parseFloat(s)
	}
	return ret
}

// toInts converts the fields at positions idx to ints. ok is false if
// any of them is missing or not an integer
func toInts(fields []string, idx ...int) (ret []int, ok bool) {
	ret = make([]int, len(idx))
	for i, j := range idx {
		v, err := strconv.Atoi(field(fields, j))
		if err != nil {
			return nil, false
		}
		ret[i] = v
	}
	return ret, true
}

// field returns fields[i], or the empty string if fields is too short
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// Equal reports whether a and b agree to within EPS
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, EPS)
}
