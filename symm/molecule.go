package symm

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var symbols = []string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu",
	"Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
}

// Atom is a single nucleus with its atomic number and Cartesian
// coordinates in Ångstroms
type Atom struct {
	Number int
	X      float64
	Y      float64
	Z      float64
}

// Label returns the element symbol for a, or "X" if the atomic
// number is outside the known range
func (a Atom) Label() string {
	if a.Number < 0 || a.Number >= len(symbols) {
		return symbols[0]
	}
	return symbols[a.Number]
}

func (a Atom) coord() []float64 {
	return []float64{a.X, a.Y, a.Z}
}

// Molecule is an ordered list of Atoms
type Molecule struct {
	Atoms []Atom
}

// Coords returns the coordinates of m as a flat slice of length
// 3*len(m.Atoms)
func (m Molecule) Coords() []float64 {
	ret := make([]float64, 0, 3*len(m.Atoms))
	for _, a := range m.Atoms {
		ret = append(ret, a.X, a.Y, a.Z)
	}
	return ret
}

// Displace returns a copy of m with each coordinate shifted by the
// corresponding entry of disp. Missing entries in disp are treated
// as zero
func (m Molecule) Displace(disp []float64) Molecule {
	coords := m.Coords()
	n := len(disp)
	if n > len(coords) {
		n = len(coords)
	}
	floats.Add(coords[:n], disp[:n])
	return m.withCoords(coords)
}

func (m Molecule) withCoords(coords []float64) Molecule {
	ret := Molecule{Atoms: make([]Atom, len(m.Atoms))}
	for i, a := range m.Atoms {
		ret.Atoms[i] = Atom{
			Number: a.Number,
			X:      coords[3*i],
			Y:      coords[3*i+1],
			Z:      coords[3*i+2],
		}
	}
	return ret
}

// Transform applies the 3x3 matrix op to every atom in m
func (m Molecule) Transform(op mat.Matrix) Molecule {
	ret := Molecule{Atoms: make([]Atom, len(m.Atoms))}
	var r mat.VecDense
	for i, a := range m.Atoms {
		r.MulVec(op, mat.NewVecDense(3, a.coord()))
		ret.Atoms[i] = Atom{
			Number: a.Number,
			X:      r.AtVec(0),
			Y:      r.AtVec(1),
			Z:      r.AtVec(2),
		}
	}
	return ret
}

// Equal reports whether m and o contain the same atoms at the same
// positions to within eps, regardless of atom order
func (m Molecule) Equal(o Molecule, eps float64) bool {
	if len(m.Atoms) != len(o.Atoms) {
		return false
	}
	used := make([]bool, len(o.Atoms))
outer:
	for _, a := range m.Atoms {
		for j, b := range o.Atoms {
			if used[j] || a.Number != b.Number {
				continue
			}
			if floats.EqualApprox(a.coord(), b.coord(), eps) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// String formats m as an XYZ-style geometry block
func (m Molecule) String() string {
	var geom strings.Builder
	for _, a := range m.Atoms {
		fmt.Fprintf(&geom, "%-2s%15.7f%15.7f%15.7f\n",
			a.Label(), a.X, a.Y, a.Z,
		)
	}
	return geom.String()
}
