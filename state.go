package summarize

import (
	"regexp"
	"strings"
)

type state int

const (
	stateNone state = iota
	stateGeom
	stateLXM
	stateFund
	stateCorr
	stateRotA
	stateRotS
	stateFermi1
	stateFermi2
	stateCoriol
	stateVibAvg
	stateCurvil
)

var (
	// digits only, the column numbers above each block of the LXM
	// matrix
	lxmHeader = regexp.MustCompile(`^\s*\d+(\s+\d+)*\s*$`)
	rotEquil  = regexp.MustCompile(`^\s*(A|B|C)e\s+(\S+)\s*$`)
	quartic   = regexp.MustCompile(
		`^\s*(DELTA JK|DELTA J|DELTA K|delta J|delta K|` +
			`D JK|D J|D K|d 1|d 2)\s+(\S+)\s*$`)
	sextic = regexp.MustCompile(
		`^\s*(PHI JK|PHI KJ|PHI J|PHI K|phi jk|phi j|phi k|` +
			`H JK|H KJ|H J|H K|h 1|h 2|h 3)\s+(\S+)\s*$`)
	fermiHeader = regexp.MustCompile(`INPUTED FERMI.*TYPE\s+(1|2)`)
)

type parser struct {
	sum   *Summary
	state state
	skip  int

	// LXM columns in the order printed, with the frequencies above
	// the rotation/translation threshold
	block    int
	lxm      [][]float64
	lxmFreqs []float64

	// quantum numbers of the vibrational state currently being
	// described in the state table or rotational levels
	quanta []string
	energy string
	freq   string
	// whether energy and freq belong to an unflushed state
	pending bool
}

func newParser() *parser {
	return &parser{
		sum: &Summary{
			Fermi:    make(map[int][]Pair),
			Coriolis: make(Coriolis),
		},
		block: -1,
	}
}

// enter switches to next, skipping the following skip lines and
// discarding any partially accumulated state description
func (p *parser) enter(next state, skip int) {
	p.state = next
	p.skip = skip
	p.quanta = nil
	p.pending = false
}

// line processes a single line of output. Section markers are
// recognized before the line is handed to the active section, so a
// new header always interrupts the current section
func (p *parser) line(line string) error {
	switch {
	case p.skip > 0:
		p.skip--
	case strings.Contains(line, "MOLECULAR PRINCIPAL GEOMETRY"):
		p.enter(stateGeom, 2)
	case rotEquil.MatchString(line):
		p.enter(stateNone, 0)
		m := rotEquil.FindStringSubmatch(line)
		p.sum.RotEquil = append(p.sum.RotEquil, parseFloat(m[2]))
	case strings.Contains(line, "LXM MATRIX"):
		p.enter(stateLXM, 1)
		p.block = -1
		p.lxm = nil
		p.lxmFreqs = nil
	case strings.Contains(line, "BAND CENTER ANALYSIS"):
		p.enter(stateFund, 3)
	case strings.Contains(line, "DUNHAM"),
		strings.Contains(line, "VIBRATIONAL ENERGY AND"):
		p.enter(stateNone, 0)
	case strings.Contains(line, "STATE NO.") &&
		!strings.Contains(line, "SPECTRUM"):
		p.enter(stateCorr, 2)
	case p.state == stateCorr && strings.Contains(line, "*******"):
		p.flushCorr()
		p.enter(stateNone, 0)
	case strings.Contains(line, "ROTATIONAL ENERGY LEVELS") &&
		strings.Contains(line, "ASYMMETRIC TOP"):
		p.enter(stateRotA, 1)
	case strings.Contains(line, "ROTATIONAL ENERGY LEVELS") &&
		strings.Contains(line, "SYMMETRIC TOP"):
		p.enter(stateRotS, 1)
	case quartic.MatchString(line):
		p.enter(stateNone, 0)
		m := quartic.FindStringSubmatch(line)
		p.sum.Deltas.set(m[1], parseFortran(m[2]))
	case sextic.MatchString(line):
		p.enter(stateNone, 0)
		m := sextic.FindStringSubmatch(line)
		v := parseFortran(m[2])
		if v != BadFloat {
			v *= hzToMHz
		}
		p.sum.Phis.set(m[1], v)
	case fermiHeader.MatchString(line):
		if fermiHeader.FindStringSubmatch(line)[1] == "1" {
			p.enter(stateFermi1, 1)
		} else {
			p.enter(stateFermi2, 2)
		}
	case strings.Contains(line, "INPUTED CORIOLIS"):
		p.enter(stateCoriol, 1)
	case strings.Contains(line, "CURVILINEAR INTERNAL COORDINATES"):
		p.enter(stateCurvil, 1)
	case strings.Contains(line, "VIBRATIONALLY AVERAGED COORDINATES"):
		// linear molecules get an extra line explaining the missing
		// constants
		if len(p.sum.RotEquil) == 1 {
			p.enter(stateVibAvg, 3)
		} else {
			p.enter(stateVibAvg, 2)
		}
	default:
		return p.dispatch(line)
	}
	return nil
}

func (p *parser) dispatch(line string) error {
	switch p.state {
	case stateGeom:
		return p.geom(line)
	case stateLXM:
		p.lxmLine(line)
	case stateFund:
		p.fund(line)
	case stateCorr:
		p.corr(line)
	case stateRotA, stateRotS:
		p.rot(line)
	case stateFermi1:
		p.fermi1(line)
	case stateFermi2:
		p.fermi2(line)
	case stateCoriol:
		p.coriol(line)
	case stateVibAvg:
		p.vibAvg(line)
	case stateCurvil:
		return p.curvil(line)
	}
	return nil
}

// finish flushes any state left over at the end of the input and
// pairs the LXM columns with their frequencies
func (p *parser) finish() *Summary {
	if p.state == stateCorr {
		p.flushCorr()
	}
	p.sum.LXM = dedupModes(p.lxm, p.lxmFreqs)
	return p.sum
}

// dedupModes drops every mode vector whose frequency repeats one
// already seen, keeping the first member of each degenerate set.
// Vectors are paired with freqs in order, and those left without a
// frequency belong to rotations and translations, so they are dropped
func dedupModes(vecs [][]float64, freqs []float64) (ret [][]float64) {
	var seen []float64
outer:
	for i, vec := range vecs {
		if i >= len(freqs) {
			break
		}
		for _, s := range seen {
			if Equal(s, freqs[i]) {
				continue outer
			}
		}
		seen = append(seen, freqs[i])
		ret = append(ret, vec)
	}
	return
}
