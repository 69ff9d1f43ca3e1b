package summarize

const hzToMHz = 1e-6

// Delta holds the quartic centrifugal distortion constants in MHz for
// both the Watson A-reduced (BigDelta*, Delta*) and S-reduced (D*, d*)
// Hamiltonians. Constants that were not printed are nil
type Delta struct {
	BigDeltaJ  *float64 `json:"big_delta_j,omitempty"`
	BigDeltaK  *float64 `json:"big_delta_k,omitempty"`
	BigDeltaJK *float64 `json:"big_delta_jk,omitempty"`
	DeltaJ     *float64 `json:"delta_j,omitempty"`
	DeltaK     *float64 `json:"delta_k,omitempty"`

	DJ  *float64 `json:"d_j,omitempty"`
	DJK *float64 `json:"d_jk,omitempty"`
	DK  *float64 `json:"d_k,omitempty"`
	D1  *float64 `json:"d1,omitempty"`
	D2  *float64 `json:"d2,omitempty"`
}

func (d *Delta) set(name string, v float64) {
	var dst **float64
	switch name {
	case "DELTA J":
		dst = &d.BigDeltaJ
	case "DELTA K":
		dst = &d.BigDeltaK
	case "DELTA JK":
		dst = &d.BigDeltaJK
	case "delta J":
		dst = &d.DeltaJ
	case "delta K":
		dst = &d.DeltaK
	case "D J":
		dst = &d.DJ
	case "D JK":
		dst = &d.DJK
	case "D K":
		dst = &d.DK
	case "d 1":
		dst = &d.D1
	case "d 2":
		dst = &d.D2
	default:
		return
	}
	*dst = &v
}

// Phi holds the sextic centrifugal distortion constants in MHz for
// the A-reduced (BigPhi*, Phi*) and S-reduced (H*, h*) Hamiltonians
type Phi struct {
	BigPhiJ  *float64 `json:"big_phi_j,omitempty"`
	BigPhiK  *float64 `json:"big_phi_k,omitempty"`
	BigPhiJK *float64 `json:"big_phi_jk,omitempty"`
	BigPhiKJ *float64 `json:"big_phi_kj,omitempty"`
	PhiJ     *float64 `json:"phi_j,omitempty"`
	PhiJK    *float64 `json:"phi_jk,omitempty"`
	PhiK     *float64 `json:"phi_k,omitempty"`

	HJ  *float64 `json:"h_j,omitempty"`
	HJK *float64 `json:"h_jk,omitempty"`
	HKJ *float64 `json:"h_kj,omitempty"`
	HK  *float64 `json:"h_k,omitempty"`
	H1  *float64 `json:"h1,omitempty"`
	H2  *float64 `json:"h2,omitempty"`
	H3  *float64 `json:"h3,omitempty"`
}

func (p *Phi) set(name string, v float64) {
	var dst **float64
	switch name {
	case "PHI J":
		dst = &p.BigPhiJ
	case "PHI K":
		dst = &p.BigPhiK
	case "PHI JK":
		dst = &p.BigPhiJK
	case "PHI KJ":
		dst = &p.BigPhiKJ
	case "phi j":
		dst = &p.PhiJ
	case "phi jk":
		dst = &p.PhiJK
	case "phi k":
		dst = &p.PhiK
	case "H J":
		dst = &p.HJ
	case "H JK":
		dst = &p.HJK
	case "H KJ":
		dst = &p.HKJ
	case "H K":
		dst = &p.HK
	case "h 1":
		dst = &p.H1
	case "h 2":
		dst = &p.H2
	case "h 3":
		dst = &p.H3
	default:
		return
	}
	*dst = &v
}

// Constant is a named distortion constant, labeled the way SPECTRO
// prints it
type Constant struct {
	Name  string
	Value float64
}

func collect(names []string, vals []*float64) (ret []Constant) {
	for i, v := range vals {
		if v != nil {
			ret = append(ret, Constant{Name: names[i], Value: *v})
		}
	}
	return
}

// Constants returns the quartic constants that were printed, A
// reduction first
func (d Delta) Constants() []Constant {
	return collect(
		[]string{"DELTA J", "DELTA K", "DELTA JK", "delta J", "delta K",
			"D J", "D JK", "D K", "d 1", "d 2"},
		[]*float64{d.BigDeltaJ, d.BigDeltaK, d.BigDeltaJK, d.DeltaJ,
			d.DeltaK, d.DJ, d.DJK, d.DK, d.D1, d.D2},
	)
}

// Constants returns the sextic constants that were printed, A
// reduction first
func (p Phi) Constants() []Constant {
	return collect(
		[]string{"PHI J", "PHI K", "PHI JK", "PHI KJ", "phi j", "phi jk",
			"phi k", "H J", "H JK", "H KJ", "H K", "h 1", "h 2", "h 3"},
		[]*float64{p.BigPhiJ, p.BigPhiK, p.BigPhiJK, p.BigPhiKJ, p.PhiJ,
			p.PhiJK, p.PhiK, p.HJ, p.HJK, p.HKJ, p.HK, p.H1, p.H2, p.H3},
	)
}
