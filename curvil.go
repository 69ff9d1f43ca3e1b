package summarize

import (
	"fmt"
	"strings"
)

type CurvilKind int

const (
	Bond CurvilKind = iota
	Angle
	Torsion
	LinearBend
)

var curvilNames = [...]string{
	Bond:       "bond",
	Angle:      "angle",
	Torsion:    "torsion",
	LinearBend: "linear",
}

func (k CurvilKind) String() string {
	if k < 0 || int(k) >= len(curvilNames) {
		return fmt.Sprintf("CurvilKind(%d)", int(k))
	}
	return curvilNames[k]
}

func (k CurvilKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CurvilKind) UnmarshalText(text []byte) error {
	for i, name := range curvilNames {
		if name == string(text) {
			*k = CurvilKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCoord, text)
}

// Curvil is a curvilinear internal coordinate over 1-based atom
// indices: two for a Bond, three for an Angle or LinearBend, and four
// for a Torsion
type Curvil struct {
	Kind  CurvilKind `json:"kind"`
	Atoms []int      `json:"atoms"`
}

func (c Curvil) String() string {
	atoms := make([]string, len(c.Atoms))
	for i, a := range c.Atoms {
		atoms[i] = fmt.Sprint(a)
	}
	prefix := map[CurvilKind]string{
		Bond:       "r",
		Angle:      "<",
		Torsion:    "t",
		LinearBend: "L",
	}[c.Kind]
	return fmt.Sprintf("%s(%s)", prefix, strings.Join(atoms, "-"))
}
