package symm

import (
	"errors"
	"fmt"
)

// Irrep is an irreducible representation (symmetry species) of one
// of the abelian point groups supported by this package
type Irrep int

const (
	A Irrep = iota
	B
	Ap
	App
	A1
	A2
	B1
	B2
	B3
	Ag
	Bg
	Au
	Bu
	B1g
	B2g
	B3g
	B1u
	B2u
	B3u
)

var irrepNames = [...]string{
	A:   "A",
	B:   "B",
	Ap:  "A'",
	App: "A''",
	A1:  "A1",
	A2:  "A2",
	B1:  "B1",
	B2:  "B2",
	B3:  "B3",
	Ag:  "Ag",
	Bg:  "Bg",
	Au:  "Au",
	Bu:  "Bu",
	B1g: "B1g",
	B2g: "B2g",
	B3g: "B3g",
	B1u: "B1u",
	B2u: "B2u",
	B3u: "B3u",
}

var ErrUnknownIrrep = errors.New("symm: unknown irrep")

func (i Irrep) String() string {
	if i < 0 || int(i) >= len(irrepNames) {
		return fmt.Sprintf("Irrep(%d)", int(i))
	}
	return irrepNames[i]
}

// ParseIrrep is the inverse of Irrep.String
func ParseIrrep(s string) (Irrep, error) {
	for i, name := range irrepNames {
		if name == s {
			return Irrep(i), nil
		}
	}
	return A, fmt.Errorf("%w: %q", ErrUnknownIrrep, s)
}

func (i Irrep) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Irrep) UnmarshalText(text []byte) (err error) {
	*i, err = ParseIrrep(string(text))
	return
}
