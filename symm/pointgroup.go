package symm

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Axis is one of the Cartesian axes
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// next returns the axis following a in cyclic order
func (a Axis) next() Axis {
	return (a + 1) % 3
}

type OpKind int

const (
	Rotation OpKind = iota
	Reflection
	Inversion
)

// Op is a symmetry operation of an abelian point group. Rotations
// are C2 rotations about Axis, and Reflections are through the plane
// perpendicular to Axis. Axis is ignored for Inversion
type Op struct {
	Kind OpKind
	Axis Axis
}

func (o Op) String() string {
	switch o.Kind {
	case Rotation:
		return fmt.Sprintf("C2(%s)", o.Axis)
	case Reflection:
		var plane []string
		for _, a := range []Axis{X, Y, Z} {
			if a != o.Axis {
				plane = append(plane, a.String())
			}
		}
		return fmt.Sprintf("σ(%s)", strings.Join(plane, ""))
	default:
		return "i"
	}
}

// Matrix returns the 3x3 Cartesian representation of o
func (o Op) Matrix() *mat.Dense {
	diag := []float64{1, 1, 1}
	switch o.Kind {
	case Rotation:
		for _, a := range []Axis{X, Y, Z} {
			if a != o.Axis {
				diag[a] = -1
			}
		}
	case Reflection:
		diag[o.Axis] = -1
	case Inversion:
		diag = []float64{-1, -1, -1}
	}
	ret := mat.NewDense(3, 3, nil)
	for i, d := range diag {
		ret.Set(i, i, d)
	}
	return ret
}

func rot(a Axis) Op   { return Op{Kind: Rotation, Axis: a} }
func plane(a Axis) Op { return Op{Kind: Reflection, Axis: a} }

var inv = Op{Kind: Inversion}

// PointGroup is an abelian point group together with its character
// table. Ops excludes the identity, and Chars[i][j] is the character
// of Irreps[i] under Ops[j]. The first irrep is always totally
// symmetric
type PointGroup struct {
	Name   string
	Ops    []Op
	Irreps []Irrep
	Chars  [][]int

	// equilibrium geometry the group was detected from
	ref Molecule
}

func (pg PointGroup) String() string {
	return pg.Name
}

// TotallySymmetric returns the totally symmetric irrep of pg, or A
// for an empty PointGroup
func (pg PointGroup) TotallySymmetric() Irrep {
	if len(pg.Irreps) == 0 {
		return A
	}
	return pg.Irreps[0]
}

func c1() PointGroup {
	return PointGroup{Name: "C1", Irreps: []Irrep{A}, Chars: [][]int{{}}}
}

func cs(p Axis) PointGroup {
	return PointGroup{
		Name:   "Cs",
		Ops:    []Op{plane(p)},
		Irreps: []Irrep{Ap, App},
		Chars:  [][]int{{1}, {-1}},
	}
}

func ci() PointGroup {
	return PointGroup{
		Name:   "Ci",
		Ops:    []Op{inv},
		Irreps: []Irrep{Ag, Au},
		Chars:  [][]int{{1}, {-1}},
	}
}

func c2(a Axis) PointGroup {
	return PointGroup{
		Name:   "C2",
		Ops:    []Op{rot(a)},
		Irreps: []Irrep{A, B},
		Chars:  [][]int{{1}, {-1}},
	}
}

// c2v orders its mirror planes so that the plane containing a and
// the next axis in cyclic order comes first. For a C2 axis along z
// that is σ(xz) then σ(yz), and B1 is symmetric under σ(xz)
func c2v(a Axis) PointGroup {
	first := a.next().next()
	second := a.next()
	return PointGroup{
		Name:   "C2v",
		Ops:    []Op{rot(a), plane(first), plane(second)},
		Irreps: []Irrep{A1, A2, B1, B2},
		Chars: [][]int{
			{1, 1, 1},
			{1, -1, -1},
			{-1, 1, -1},
			{-1, -1, 1},
		},
	}
}

func c2h(a Axis) PointGroup {
	return PointGroup{
		Name:   "C2h",
		Ops:    []Op{rot(a), inv, plane(a)},
		Irreps: []Irrep{Ag, Bg, Au, Bu},
		Chars: [][]int{
			{1, 1, 1},
			{-1, 1, -1},
			{1, -1, -1},
			{-1, -1, 1},
		},
	}
}

func d2() PointGroup {
	return PointGroup{
		Name:   "D2",
		Ops:    []Op{rot(Z), rot(Y), rot(X)},
		Irreps: []Irrep{A, B1, B2, B3},
		Chars: [][]int{
			{1, 1, 1},
			{1, -1, -1},
			{-1, 1, -1},
			{-1, -1, 1},
		},
	}
}

func d2h() PointGroup {
	return PointGroup{
		Name: "D2h",
		Ops: []Op{
			rot(Z), rot(Y), rot(X),
			inv,
			plane(Z), plane(Y), plane(X),
		},
		Irreps: []Irrep{Ag, B1g, B2g, B3g, Au, B1u, B2u, B3u},
		Chars: [][]int{
			{1, 1, 1, 1, 1, 1, 1},
			{1, -1, -1, 1, 1, -1, -1},
			{-1, 1, -1, 1, -1, 1, -1},
			{-1, -1, 1, 1, -1, -1, 1},
			{1, 1, 1, -1, -1, -1, -1},
			{1, -1, -1, -1, -1, 1, 1},
			{-1, 1, -1, -1, 1, -1, 1},
			{-1, -1, 1, -1, 1, 1, -1},
		},
	}
}

// Detect returns the largest subgroup of D2h, with operations aligned
// to the Cartesian axes, that leaves mol invariant to within eps.
// mol is expected to be centered at its center of mass and oriented
// along its principal axes. Linear molecules are reported as D2h or
// C2v
func Detect(mol Molecule, eps float64) PointGroup {
	var axes, planes []Axis
	for _, a := range []Axis{X, Y, Z} {
		if invariant(mol, rot(a), eps) {
			axes = append(axes, a)
		}
		if invariant(mol, plane(a), eps) {
			planes = append(planes, a)
		}
	}
	hasInv := invariant(mol, inv, eps)
	var pg PointGroup
	switch {
	case len(axes) == 3 && hasInv:
		pg = d2h()
	case len(axes) == 3:
		pg = d2()
	case len(axes) == 1 && hasInv:
		pg = c2h(axes[0])
	case len(axes) == 1 && len(planes) >= 2:
		pg = c2v(axes[0])
	case len(axes) == 1:
		pg = c2(axes[0])
	case len(planes) >= 1:
		pg = cs(planes[0])
	case hasInv:
		pg = ci()
	default:
		pg = c1()
	}
	pg.ref = mol
	return pg
}

func invariant(mol Molecule, op Op, eps float64) bool {
	return mol.Transform(op.Matrix()).Equal(mol, eps)
}

var (
	ErrNoReference  = errors.New("symm: point group has no reference geometry")
	ErrMismatch     = errors.New("symm: displacement is neither symmetric nor antisymmetric")
	ErrNoCharacters = errors.New("symm: characters match no irrep")
)

// Classify returns the irrep of pg spanned by the displacement of
// displaced away from the geometry pg was detected from. An operation
// has character +1 when it maps displaced onto itself and -1 when it
// maps displaced onto the oppositely displaced geometry
func (pg PointGroup) Classify(displaced Molecule, eps float64) (Irrep, error) {
	if len(pg.ref.Atoms) != len(displaced.Atoms) {
		return pg.TotallySymmetric(), ErrNoReference
	}
	disp := make([]float64, 0, 3*len(displaced.Atoms))
	ref := pg.ref.Coords()
	for i, c := range displaced.Coords() {
		disp = append(disp, ref[i]-c)
	}
	opposite := pg.ref.Displace(disp)
	chars := make([]int, len(pg.Ops))
	for i, op := range pg.Ops {
		image := displaced.Transform(op.Matrix())
		switch {
		case image.Equal(displaced, eps):
			chars[i] = 1
		case image.Equal(opposite, eps):
			chars[i] = -1
		default:
			return pg.TotallySymmetric(),
				fmt.Errorf("%w under %s", ErrMismatch, op)
		}
	}
outer:
	for i, row := range pg.Chars {
		for j, c := range row {
			if chars[j] != c {
				continue outer
			}
		}
		return pg.Irreps[i], nil
	}
	return pg.TotallySymmetric(), fmt.Errorf("%w: %v", ErrNoCharacters, chars)
}

// Classifier is the default symmetry collaborator, backed by Detect
// and PointGroup.Classify
type Classifier struct{}

func (Classifier) PointGroup(mol Molecule, eps float64) PointGroup {
	return Detect(mol, eps)
}

func (Classifier) Irrep(pg PointGroup, displaced Molecule, eps float64) (Irrep, error) {
	return pg.Classify(displaced, eps)
}
