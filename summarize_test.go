package summarize

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"

	"bwestbro.com/summarize/symm"
)

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func ptrEqual(p *float64, want, eps float64) bool {
	return p != nil && math.Abs(*p-want) <= eps
}

// hcch.out is a 4-atom linear molecule with the reference harmonic
// frequencies and ZPT of the near-linear end-to-end case
func TestNewHCCH(t *testing.T) {
	got, err := New("testdata/hcch.out")
	if err != nil {
		t.Fatal(err)
	}
	t.Run("harm", func(t *testing.T) {
		want := []float64{2929.500, 2834.256, 2236.673, 939.167, 791.065}
		if !reflect.DeepEqual(got.Harm, want) {
			t.Errorf("got %v, wanted %v\n", got.Harm, want)
		}
	})
	t.Run("fund", func(t *testing.T) {
		want := []float64{2886.379, 2799.917, 2221.068, 936.105, 797.174}
		if !reflect.DeepEqual(got.Fund, want) {
			t.Errorf("got %v, wanted %v\n", got.Fund, want)
		}
	})
	t.Run("corr", func(t *testing.T) {
		want := []float64{2886.3792, 2799.9172, 2221.0683, 936.1049, 797.1743}
		if !reflect.DeepEqual(got.Corr, want) {
			t.Errorf("got %v, wanted %v\n", got.Corr, want)
		}
	})
	t.Run("zpt", func(t *testing.T) {
		if got.ZPT != 5707.3228 {
			t.Errorf("got %v, wanted %v\n", got.ZPT, 5707.3228)
		}
	})
	t.Run("geom", func(t *testing.T) {
		want := symm.Molecule{Atoms: []symm.Atom{
			{Number: 1, Z: 1.6353253},
			{Number: 6, Z: -0.6014244},
			{Number: 6, Z: 0.6014244},
			{Number: 1, Z: -1.6353253},
		}}
		if !reflect.DeepEqual(got.Geom, want) {
			t.Errorf("got %v, wanted %v\n", got.Geom, want)
		}
	})
	t.Run("lxm", func(t *testing.T) {
		if len(got.LXM) != len(got.Harm) {
			t.Errorf("got %d modes, wanted %d\n", len(got.LXM), len(got.Harm))
		}
		for i, v := range got.LXM {
			if len(v) != 12 {
				t.Errorf("mode %d: got %d coordinates, wanted 12\n",
					i+1, len(v))
			}
		}
	})
	t.Run("irreps", func(t *testing.T) {
		want := []symm.Irrep{symm.Ag, symm.B1u, symm.Ag, symm.B2g, symm.B3u}
		if !reflect.DeepEqual(got.Irreps, want) {
			t.Errorf("got %v, wanted %v\n", got.Irreps, want)
		}
	})
	t.Run("rots", func(t *testing.T) {
		want := [][]float64{
			{35274.0 - 0.0064*cmToMHz},
			{35274.0 - 0.0135*cmToMHz},
			nil,
			nil,
			nil,
			{35274.0 + 0.0022*cmToMHz},
		}
		if len(got.Rots) != len(want) {
			t.Fatalf("got %v, wanted %v\n", got.Rots, want)
		}
		for i := range want {
			if !compFloat(got.Rots[i], want[i], 1e-6) {
				t.Errorf("Rots[%d]: got %v, wanted %v\n",
					i, got.Rots[i], want[i])
			}
		}
		if !reflect.DeepEqual(got.RotEquil, []float64{35274.0}) {
			t.Errorf("got %v, wanted %v\n", got.RotEquil, []float64{35274.0})
		}
	})
	t.Run("distortion", func(t *testing.T) {
		if !ptrEqual(got.Deltas.DJ, 0.04695, 1e-12) {
			t.Errorf("got %v, wanted %v\n", got.Deltas.DJ, 0.04695)
		}
		if !ptrEqual(got.Phis.HJ, 5.12e-8, 1e-18) {
			t.Errorf("got %v, wanted %v\n", got.Phis.HJ, 5.12e-8)
		}
		if got.Deltas.BigDeltaJ != nil {
			t.Errorf("got %v, wanted nil\n", *got.Deltas.BigDeltaJ)
		}
	})
	t.Run("curvils", func(t *testing.T) {
		want := []Curvil{
			{Kind: Bond, Atoms: []int{1, 3}},
			{Kind: Bond, Atoms: []int{2, 3}},
			{Kind: LinearBend, Atoms: []int{1, 3, 2}},
		}
		if !reflect.DeepEqual(got.Curvils, want) {
			t.Errorf("got %v, wanted %v\n", got.Curvils, want)
		}
	})
	t.Run("vibavg", func(t *testing.T) {
		wantEq := []float64{1.0339009, 1.2028488, 180.0}
		wantAl := []float64{1.0553201, 1.2041342, 179.8812345}
		if !reflect.DeepEqual(got.Requil, wantEq) {
			t.Errorf("got %v, wanted %v\n", got.Requil, wantEq)
		}
		if !reflect.DeepEqual(got.Ralpha, wantAl) {
			t.Errorf("got %v, wanted %v\n", got.Ralpha, wantAl)
		}
	})
	t.Run("resonances", func(t *testing.T) {
		if len(got.Fermi) != 0 || len(got.Coriolis) != 0 {
			t.Errorf("got %v and %v, wanted none\n", got.Fermi, got.Coriolis)
		}
	})
}

func TestNewH2O(t *testing.T) {
	got, err := New("testdata/h2o.out")
	if err != nil {
		t.Fatal(err)
	}
	t.Run("freqs", func(t *testing.T) {
		wantHarm := []float64{3943.612, 3833.154, 1649.227}
		wantFund := []float64{3755.871, 3656.977, 1594.572}
		wantCorr := []float64{3753.2145, 3656.9771, 1594.5724}
		if !reflect.DeepEqual(got.Harm, wantHarm) {
			t.Errorf("Harm: got %v, wanted %v\n", got.Harm, wantHarm)
		}
		if !reflect.DeepEqual(got.Fund, wantFund) {
			t.Errorf("Fund: got %v, wanted %v\n", got.Fund, wantFund)
		}
		if !reflect.DeepEqual(got.Corr, wantCorr) {
			t.Errorf("Corr: got %v, wanted %v\n", got.Corr, wantCorr)
		}
		if got.ZPT != 4637.5132 {
			t.Errorf("ZPT: got %v, wanted %v\n", got.ZPT, 4637.5132)
		}
	})
	t.Run("irreps", func(t *testing.T) {
		want := []symm.Irrep{symm.B2, symm.A1, symm.A1}
		if !reflect.DeepEqual(got.Irreps, want) {
			t.Errorf("got %v, wanted %v\n", got.Irreps, want)
		}
	})
	t.Run("rots", func(t *testing.T) {
		want := [][]float64{
			{27.2644 * cmToMHz, 14.5757 * cmToMHz, 9.2776 * cmToMHz},
			{26.6410 * cmToMHz, 14.4890 * cmToMHz, 9.2211 * cmToMHz},
			{26.7825 * cmToMHz, 14.5030 * cmToMHz, 9.2302 * cmToMHz},
			{28.8873 * cmToMHz, 14.6689 * cmToMHz, 9.3567 * cmToMHz},
		}
		if len(got.Rots) != len(want) {
			t.Fatalf("got %v, wanted %v\n", got.Rots, want)
		}
		for i := range want {
			if !compFloat(got.Rots[i], want[i], 1e-6) {
				t.Errorf("Rots[%d]: got %v, wanted %v\n",
					i, got.Rots[i], want[i])
			}
		}
		wantEquil := []float64{835840.29, 435351.72, 278138.7}
		if !reflect.DeepEqual(got.RotEquil, wantEquil) {
			t.Errorf("got %v, wanted %v\n", got.RotEquil, wantEquil)
		}
	})
	t.Run("distortion", func(t *testing.T) {
		tests := []struct {
			name string
			got  *float64
			want float64
		}{
			{"DELTA J", got.Deltas.BigDeltaJ, 1.23456789},
			{"DELTA K", got.Deltas.BigDeltaK, 32.26},
			{"DELTA JK", got.Deltas.BigDeltaJK, -5.187},
			{"delta J", got.Deltas.DeltaJ, 0.4996},
			{"delta K", got.Deltas.DeltaK, 1.263},
			{"D J", got.Deltas.DJ, 1.097},
			{"D JK", got.Deltas.DJK, -4.335},
			{"D K", got.Deltas.DK, 31.64},
			{"d 1", got.Deltas.D1, -0.4996},
			{"d 2", got.Deltas.D2, -0.06854},
			{"PHI J", got.Phis.BigPhiJ, 563.7e-6},
			{"PHI K", got.Phis.BigPhiK, 34740e-6},
			{"PHI JK", got.Phis.BigPhiJK, 1712e-6},
			{"PHI KJ", got.Phis.BigPhiKJ, -7345e-6},
			{"phi j", got.Phis.PhiJ, 280e-6},
			{"phi jk", got.Phis.PhiJK, 1120e-6},
			{"phi k", got.Phis.PhiK, 22340e-6},
			{"H J", got.Phis.HJ, 400e-6},
			{"H JK", got.Phis.HJK, 1987e-6},
			{"H KJ", got.Phis.HKJ, -8123e-6},
			{"H K", got.Phis.HK, 35120e-6},
			{"h 1", got.Phis.H1, 163.7e-6},
			{"h 2", got.Phis.H2, 56.01e-6},
			{"h 3", got.Phis.H3, 10.2e-6},
		}
		for _, test := range tests {
			if !ptrEqual(test.got, test.want, 1e-12) {
				t.Errorf("%s: got %v, wanted %v\n",
					test.name, test.got, test.want)
			}
		}
	})
	t.Run("resonances", func(t *testing.T) {
		wantFermi := map[int][]Pair{
			1: {{2, 3}},
			2: {{3, 3}},
		}
		if !reflect.DeepEqual(got.Fermi, wantFermi) {
			t.Errorf("got %v, wanted %v\n", got.Fermi, wantFermi)
		}
		wantCoriol := Coriolis{
			{1, 2}: {1, 3},
			{2, 3}: {2},
		}
		if !reflect.DeepEqual(got.Coriolis, wantCoriol) {
			t.Errorf("got %v, wanted %v\n", got.Coriolis, wantCoriol)
		}
	})
	t.Run("curvils", func(t *testing.T) {
		want := []Curvil{
			{Kind: Bond, Atoms: []int{1, 2}},
			{Kind: Bond, Atoms: []int{1, 3}},
			{Kind: Angle, Atoms: []int{2, 1, 3}},
		}
		if !reflect.DeepEqual(got.Curvils, want) {
			t.Errorf("got %v, wanted %v\n", got.Curvils, want)
		}
		wantEq := []float64{0.9576, 0.9576, 104.5}
		if !reflect.DeepEqual(got.Requil, wantEq) {
			t.Errorf("got %v, wanted %v\n", got.Requil, wantEq)
		}
	})
	t.Run("kappa", func(t *testing.T) {
		k, ok := got.Kappa()
		if !ok || k >= -0.3 || k <= -0.5 {
			t.Errorf("got %v, %v, wanted asymmetric top near -0.41\n", k, ok)
		}
	})
}

func TestReadIdempotent(t *testing.T) {
	data, err := os.ReadFile("testdata/h2o.out")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("got %v, wanted %v\n", a, b)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := New("testdata/nonexistent.out")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("got %v, wanted %v\n", err, ErrFileNotFound)
	}
}

func TestReadFatal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "isotope",
			in: ` MOLECULAR PRINCIPAL GEOMETRY IN ANGSTROMS
   ATOM        X              Y              Z             MASS
 -----
   X       0.0000000      0.0000000      0.0000000     99.9999999
`,
			want: ErrUnknownIsotope,
		},
		{
			name: "coord",
			in: ` CURVILINEAR INTERNAL COORDINATES
 -----
    1   STRETCH     O(  1)  H(  2)
    2   WAG         H(  2)  O(  1)  H(  3)  H(  4)
`,
			want: ErrUnknownCoord,
		},
	}
	for _, test := range tests {
		got, err := Read(strings.NewReader(test.in))
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, wanted %v\n", test.name, err, test.want)
		}
		if got != nil {
			t.Errorf("%s: got %v, wanted nil summary\n", test.name, got)
		}
	}
}

func TestFromJSON(t *testing.T) {
	want, err := New("testdata/h2o.out")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, wanted %+v\n", got, want)
	}
}

func TestFromJSONPartial(t *testing.T) {
	in := `{"harm": [1, 2], "irreps": ["A1", "B2"], "zpt": 3.5}`
	got, err := FromJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.Fermi == nil || got.Coriolis == nil {
		t.Errorf("got nil resonance maps\n")
	}
	want := []symm.Irrep{symm.A1, symm.B2}
	if !reflect.DeepEqual(got.Irreps, want) {
		t.Errorf("got %v, wanted %v\n", got.Irreps, want)
	}
	_, err = FromJSON(strings.NewReader(`{"irreps": ["E"]}`))
	if !errors.Is(err, symm.ErrUnknownIrrep) {
		t.Errorf("got %v, wanted %v\n", err, symm.ErrUnknownIrrep)
	}
}
