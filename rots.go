package summarize

// Triple expands a row of rotational constants into A, B, and C
// positions. Rows from symmetric tops and linear molecules hold fewer
// than three constants, and the positions they lack are reported as
// absent rather than zero
func Triple(rot []float64) (abc [3]float64, ok [3]bool) {
	for i := 0; i < 3 && i < len(rot); i++ {
		abc[i] = rot[i]
		ok[i] = true
	}
	return
}

// Kappa returns Ray's asymmetry parameter for the vibrational ground
// state, or false if s is not an asymmetric top
func (s *Summary) Kappa() (float64, bool) {
	if len(s.RotEquil) != 3 || len(s.Rots) == 0 || len(s.Rots[0]) != 3 {
		return 0, false
	}
	a, b, c := s.Rots[0][0], s.Rots[0][1], s.Rots[0][2]
	return (2*b - a - c) / (a - c), true
}
