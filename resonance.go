package summarize

import (
	"encoding/json"
	"sort"
)

// Pair is a pair of 1-based mode indices
type Pair [2]int

func (p Pair) less(q Pair) bool {
	if p[0] != q[0] {
		return p[0] < q[0]
	}
	return p[1] < q[1]
}

// Coriolis maps an unordered pair of modes to the rotational axes
// (1 = A, 2 = B, 3 = C) along which they are Coriolis coupled. Keys
// are stored with the smaller mode first
type Coriolis map[Pair][]int

// Add records a coupling between modes a and b along axis
func (c Coriolis) Add(a, b, axis int) {
	if b < a {
		a, b = b, a
	}
	key := Pair{a, b}
	c[key] = append(c[key], axis)
}

// Keys returns the mode pairs of c in ascending order
func (c Coriolis) Keys() []Pair {
	keys := make([]Pair, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}

// coriolJSON is the serialized form of Coriolis, since JSON objects
// cannot have array keys
type coriolJSON struct {
	Modes []Pair  `json:"modes"`
	Axes  [][]int `json:"axes"`
}

func (c Coriolis) MarshalJSON() ([]byte, error) {
	out := coriolJSON{Modes: c.Keys(), Axes: make([][]int, 0, len(c))}
	for _, k := range out.Modes {
		out.Axes = append(out.Axes, c[k])
	}
	return json.Marshal(out)
}

func (c *Coriolis) UnmarshalJSON(data []byte) error {
	var in coriolJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = make(Coriolis, len(in.Modes))
	for i, k := range in.Modes {
		if i < len(in.Axes) {
			(*c)[k] = in.Axes[i]
		}
	}
	return nil
}
