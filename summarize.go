// Package summarize extracts vibrational frequencies, rotational
// constants, distortion constants, resonances, geometry and normal
// modes from SPECTRO output files.
package summarize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"bwestbro.com/summarize/symm"
)

const (
	// sentinel for numeric fields that failed to parse
	BadFloat = 999999999.9

	// from https://physics.nist.gov/cgi-bin/cuu/Value?c, c in
	// cm/s divided by 1e6
	cmToMHz = 29979.2458

	// LXM frequencies at or below this value belong to rotations
	// and translations
	rotTransThreshold = 5.0

	// starting tolerance for symmetry classification and the
	// ceiling for escalating it
	DefaultTolerance = 1e-4
	MaxTolerance     = 1e-1
)

// Errors
var (
	ErrFileNotFound   = errors.New("failed to open output file")
	ErrUnknownIsotope = errors.New("unrecognized isotope mass")
	ErrUnknownCoord   = errors.New("unrecognized curvilinear coordinate type")
)

// Summary is the structured record extracted from a single SPECTRO
// output file. Harm, Fund, and Corr are index-aligned by vibrational
// mode. Rots[0] holds the vibrationally-averaged constants of the
// ground state and Rots[i+1] those of the state with mode i singly
// excited. All rotational and distortion constants are in MHz
type Summary struct {
	Harm []float64 `json:"harm"`
	Fund []float64 `json:"fund"`
	Corr []float64 `json:"corr"`
	ZPT  float64   `json:"zpt"`

	Geom   symm.Molecule `json:"geom"`
	Irreps []symm.Irrep  `json:"irreps"`
	LXM    [][]float64   `json:"lxm"`

	Rots     [][]float64 `json:"rots"`
	RotEquil []float64   `json:"rot_equil"`
	Deltas   Delta       `json:"deltas"`
	Phis     Phi         `json:"phis"`

	Fermi    map[int][]Pair `json:"fermi"`
	Coriolis Coriolis       `json:"coriolis"`

	Curvils []Curvil  `json:"curvils"`
	Requil  []float64 `json:"requil"`
	Ralpha  []float64 `json:"ralpha"`
}

// New parses the SPECTRO output in filename and classifies the
// symmetry of its normal modes with the default symm.Classifier
func New(filename string) (*Summary, error) {
	return Load(filename, symm.Classifier{}, DefaultTolerance)
}

// Load is like New but with a caller-supplied symmetry collaborator
// and starting tolerance
func Load(filename string, sym Symmetry, eps float64) (*Summary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrFileNotFound, filename, err)
	}
	defer f.Close()
	sum, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	sum.Classify(sym, eps)
	return sum, nil
}

// Read scans SPECTRO output from r. The normal modes are deduplicated
// against their frequencies, but Irreps is left empty until Classify
// is called
func Read(r io.Reader) (*Summary, error) {
	p := newParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 1; scanner.Scan(); i++ {
		if err := p.line(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.finish(), nil
}
