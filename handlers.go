package summarize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"bwestbro.com/summarize/symm"
)

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// geom handles one atom of the principal-axis geometry, laid out as
// label, x, y, z, mass
func (p *parser) geom(line string) error {
	if blank(line) {
		p.enter(stateNone, 0)
		return nil
	}
	fields := strings.Fields(line)
	mass := field(fields, 4)
	num, ok := isotopes[mass]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownIsotope, mass)
	}
	p.sum.Geom.Atoms = append(p.sum.Geom.Atoms, symm.Atom{
		Number: num,
		X:      parseFloat(field(fields, 1)),
		Y:      parseFloat(field(fields, 2)),
		Z:      parseFloat(field(fields, 3)),
	})
	return nil
}

// lxmLine handles the LXM matrix, printed in blocks of up to 10
// columns. Each block starts with a line of column numbers, followed
// by one row per Cartesian coordinate and then the frequencies of
// the block's modes
func (p *parser) lxmLine(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	if lxmHeader.MatchString(line) {
		p.block++
		return
	}
	fields := strings.Fields(line)
	if _, err := strconv.Atoi(fields[0]); err == nil {
		block := p.block
		if block < 0 {
			block = 0
		}
		for c, f := range fields[1:] {
			col := 10*block + c
			if col >= len(p.lxm) {
				p.lxm = append(p.lxm, make([][]float64, col+1-len(p.lxm))...)
			}
			p.lxm[col] = append(p.lxm[col], parseFloat(f))
		}
		return
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v <= rotTransThreshold {
			continue
		}
		p.lxmFreqs = append(p.lxmFreqs, v)
	}
}

// fund handles the band center analysis, taking the harmonic and
// fundamental frequencies from the second and third fields
func (p *parser) fund(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	if !strings.ContainsAny(line, "0123456789") {
		return
	}
	fields := strings.Fields(line)
	p.sum.Harm = append(p.sum.Harm, parseFloat(field(fields, 1)))
	p.sum.Fund = append(p.sum.Fund, parseFloat(field(fields, 2)))
}

// quantaOf returns the quantum numbers following the colon in a state
// descriptor line
func quantaOf(line string) []string {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	return strings.Fields(after)
}

// corr handles the resonance-corrected state table. A state starts
// with a NON-DEG line carrying its energy and frequency, may continue
// on DEGEN lines, and ends at the next blank line
func (p *parser) corr(line string) {
	switch {
	case blank(line):
		p.flushCorr()
	case strings.Contains(line, "NON-DEG (Vs)"):
		p.flushCorr()
		fields := strings.Fields(line)
		p.energy = field(fields, 1)
		p.freq = field(fields, 2)
		p.quanta = quantaOf(line)
		p.pending = true
	case p.pending && strings.Contains(line, "DEGEN") &&
		strings.Contains(line, "(Vt)"):
		p.quanta = append(p.quanta, quantaOf(line)...)
	}
}

func (p *parser) flushCorr() {
	if !p.pending {
		return
	}
	defer func() {
		p.pending = false
		p.quanta = nil
	}()
	idx, ok := excited(p.quanta)
	switch {
	case !ok:
	case idx < 0:
		p.sum.ZPT = parseFloat(p.energy)
	default:
		if idx >= len(p.sum.Corr) {
			p.sum.Corr = append(p.sum.Corr,
				make([]float64, idx+1-len(p.sum.Corr))...)
		}
		p.sum.Corr[idx] = parseFloat(p.freq)
	}
}

// excited returns the index of the single quantum number equal to 1
// in quanta, or -1 if they are all zero. ok is false for overtones and
// combination states
func excited(quanta []string) (idx int, ok bool) {
	idx = -1
	for i, q := range quanta {
		switch q {
		case "0":
		case "1":
			if idx >= 0 {
				return 0, false
			}
			idx = i
		default:
			return 0, false
		}
	}
	return idx, true
}

// rot handles both rotational energy level sections. Descriptor lines
// give the quantum numbers of the state, and the following row of
// exactly three values gives its constants in cm-1
func (p *parser) rot(line string) {
	switch {
	case blank(line):
		p.enter(stateNone, 0)
		return
	case strings.Contains(line, "(Vs)"):
		p.quanta = quantaOf(line)
		return
	case strings.Contains(line, "(Vt)"):
		p.quanta = append(p.quanta, quantaOf(line)...)
		return
	}
	fields := strings.Fields(line)
	// TODO find out which SPECTRO versions print other field counts
	// here instead of dropping them
	if len(fields) != 3 || p.quanta == nil {
		return
	}
	idx, ok := excited(p.quanta)
	p.quanta = nil
	if !ok {
		return
	}
	vals := toFloat(fields)
	if p.state == stateRotA {
		for i, v := range vals {
			if v != BadFloat {
				vals[i] = v * cmToMHz
			}
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	} else {
		vals = p.symmetricTop(vals)
	}
	slot := idx + 1
	if slot >= len(p.sum.Rots) {
		p.sum.Rots = append(p.sum.Rots,
			make([][]float64, slot+1-len(p.sum.Rots))...)
	}
	p.sum.Rots[slot] = vals
}

// symmetricTop converts the differences from the equilibrium
// constants printed for symmetric tops and linear molecules into
// absolute constants in MHz, keeping only as many as there are
// equilibrium constants
func (p *parser) symmetricTop(diffs []float64) []float64 {
	sort.Slice(diffs, func(i, j int) bool {
		return math.Abs(diffs[i]) > math.Abs(diffs[j])
	})
	equil := make([]float64, len(p.sum.RotEquil))
	copy(equil, p.sum.RotEquil)
	sort.Sort(sort.Reverse(sort.Float64Slice(equil)))
	n := len(equil)
	if n == 0 || n > len(diffs) {
		n = len(diffs)
	}
	ret := make([]float64, n)
	for i := range ret {
		var e float64
		if i < len(equil) {
			e = equil[i]
		}
		if diffs[i] == BadFloat {
			ret[i] = BadFloat
			continue
		}
		ret[i] = e - diffs[i]*cmToMHz
	}
	return ret
}

// fermi1 handles resonances of the form 2wa = wb
func (p *parser) fermi1(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	ints, ok := toInts(strings.Fields(line), 0, 1)
	if !ok {
		return
	}
	a, b := ints[0], ints[1]
	p.sum.Fermi[b] = append(p.sum.Fermi[b], Pair{a, a})
}

// fermi2 handles resonances of the form wa + wb = wc, printed as
// "a + b c"
func (p *parser) fermi2(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	ints, ok := toInts(strings.Fields(line), 0, 2, 3)
	if !ok {
		return
	}
	a, b, c := ints[0], ints[1], ints[2]
	p.sum.Fermi[c] = append(p.sum.Fermi[c], Pair{a, b})
}

func (p *parser) coriol(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	ints, ok := toInts(strings.Fields(line), 0, 1, 2)
	if !ok {
		return
	}
	p.sum.Coriolis.Add(ints[0], ints[1], ints[2])
}

// vibAvg handles the equilibrium and vibrationally-averaged values of
// the curvilinear coordinates. The type of a linear bend takes two
// fields
func (p *parser) vibAvg(line string) {
	if blank(line) {
		p.enter(stateNone, 0)
		return
	}
	fields := strings.Fields(line)
	off := 2
	if field(fields, 1) == "LINEAR" {
		off++
	}
	p.sum.Requil = append(p.sum.Requil, parseFloat(field(fields, off)))
	p.sum.Ralpha = append(p.sum.Ralpha, parseFloat(field(fields, off+1)))
}

// curvilFields splits line on whitespace but keeps parenthesized atom
// labels like "C(  1)" together as a single field
func curvilFields(line string) []string {
	var b strings.Builder
	var depth int
	for _, r := range line {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth > 0 && unicode.IsSpace(r):
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}

func (p *parser) curvil(line string) error {
	if blank(line) {
		p.enter(stateNone, 0)
		return nil
	}
	fields := curvilFields(line)
	var (
		kind  CurvilKind
		off   = 2
		atoms int
	)
	switch typ := field(fields, 1); typ {
	case "STRETCH":
		kind, atoms = Bond, 2
	case "BEND":
		kind, atoms = Angle, 3
	case "TORSION":
		kind, atoms = Torsion, 4
	case "LINEAR":
		kind, atoms = LinearBend, 3
		off++
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCoord, typ)
	}
	if len(fields) < off+atoms {
		return nil
	}
	idx := make([]int, atoms)
	for i, f := range fields[off : off+atoms] {
		n, err := atomIndex(f)
		if err != nil {
			return nil
		}
		idx[i] = n
	}
	p.sum.Curvils = append(p.sum.Curvils, Curvil{Kind: kind, Atoms: idx})
	return nil
}

// atomIndex extracts the 1-based atom number from a label like
// "CL(12)", or from a bare integer
func atomIndex(label string) (int, error) {
	start := strings.IndexByte(label, '(')
	end := strings.IndexByte(label, ')')
	if start >= 0 && end > start {
		label = label[start+1 : end]
	}
	return strconv.Atoi(label)
}
