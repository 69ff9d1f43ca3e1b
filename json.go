package summarize

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FromJSON loads a Summary that was already extracted elsewhere, for
// example the output of a previous run with -json, bypassing the text
// scanner entirely. Irreps are taken as given
func FromJSON(r io.Reader) (*Summary, error) {
	sum := new(Summary)
	if err := json.NewDecoder(r).Decode(sum); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	if sum.Fermi == nil {
		sum.Fermi = make(map[int][]Pair)
	}
	if sum.Coriolis == nil {
		sum.Coriolis = make(Coriolis)
	}
	return sum, nil
}

// LoadJSON is FromJSON for the file named filename
func LoadJSON(filename string) (*Summary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrFileNotFound, filename, err)
	}
	defer f.Close()
	return FromJSON(f)
}
