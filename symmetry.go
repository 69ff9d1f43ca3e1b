package summarize

import (
	"log"

	"bwestbro.com/summarize/symm"
)

// Verbose toggles logging of failed symmetry classifications
var Verbose = false

// escalated tolerances may overshoot MaxTolerance by rounding error
const tolSlack = 1 + 1e-9

// Symmetry is the point-group collaborator used by Classify
type Symmetry interface {
	PointGroup(mol symm.Molecule, eps float64) symm.PointGroup
	Irrep(pg symm.PointGroup, displaced symm.Molecule, eps float64) (symm.Irrep, error)
}

// Classify fills s.Irreps with the symmetry of each normal mode in
// s.LXM, determined by displacing the equilibrium geometry along the
// mode. Classifications that fail are retried with ten times the
// tolerance until it exceeds MaxTolerance, at which point the totally
// symmetric irrep of the point group is assigned instead
func (s *Summary) Classify(sym Symmetry, eps float64) {
	pg := sym.PointGroup(s.Geom, eps)
	s.Irreps = make([]symm.Irrep, len(s.LXM))
	for i, disp := range s.LXM {
		s.Irreps[i] = irrep(sym, pg, s.Geom.Displace(disp), eps)
		if Verbose {
			log.Printf("mode %d: %s in %s\n", i+1, s.Irreps[i], pg)
		}
	}
}

func irrep(sym Symmetry, pg symm.PointGroup, mol symm.Molecule,
	eps float64) symm.Irrep {
	for tol := eps; ; tol *= 10 {
		ir, err := sym.Irrep(pg, mol, tol)
		if err == nil {
			return ir
		}
		if Verbose {
			log.Printf("classification failed at eps = %g: %v\n", tol, err)
		}
		if tol*10 > MaxTolerance*tolSlack {
			break
		}
	}
	return pg.TotallySymmetric()
}
