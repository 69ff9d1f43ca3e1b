package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"bwestbro.com/summarize"
)

var axisNames = [...]string{"", "A", "B", "C"}

type printer struct {
	w       *bufio.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

// newPrinter styles its output for w, so colors are dropped unless w
// is a terminal or force is set
func newPrinter(w io.Writer, force bool) *printer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &printer{
		w:       bufio.NewWriter(w),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9e2af")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6c7086")),
	}
}

// write prints sums, one per input file, in the format selected by
// conf
func write(w io.Writer, files []string, sums []*summarize.Summary,
	conf Config) error {
	if conf.Format == JSON {
		return writeJSON(w, sums)
	}
	p := newPrinter(w, conf.Color)
	for i, sum := range sums {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.summary(files[i], sum, conf.Vib)
	}
	return p.w.Flush()
}

// writeJSON encodes each summary as its own JSON document, so a single
// input produces exactly what FromJSON reads back
func writeJSON(w io.Writer, sums []*summarize.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, sum := range sums {
		if err := enc.Encode(sum); err != nil {
			return err
		}
	}
	return nil
}

// fmtAt formats vals[i] with prec decimals. Absent values are left
// blank and unparsable ones are marked with *
func fmtAt(vals []float64, i, prec int) string {
	if i < 0 || i >= len(vals) {
		return ""
	}
	if vals[i] == summarize.BadFloat {
		return "*"
	}
	return fmt.Sprintf("%.*f", prec, vals[i])
}

func (p *printer) summary(name string, sum *summarize.Summary, vibOnly bool) {
	fmt.Fprintln(p.w, p.title.Render(name))
	p.vib(sum)
	if vibOnly {
		return
	}
	p.rots(sum)
	p.distortion(sum)
	p.resonances(sum)
	p.geom(sum)
	p.curvils(sum)
}

func (p *printer) vib(sum *summarize.Summary) {
	n := max(len(sum.Harm), len(sum.Fund), len(sum.Corr))
	fmt.Fprintln(p.w, p.heading.Render("Vibrational frequencies (cm-1)"))
	fmt.Fprintf(p.w, "%5s%6s%10s%10s%10s\n",
		"Mode", "Symm", "Harm", "Fund", "Corr")
	for i := 0; i < n; i++ {
		var irrep string
		if i < len(sum.Irreps) {
			irrep = sum.Irreps[i].String()
		}
		fmt.Fprintf(p.w, "%5d%6s%10s%10s%10s\n", i+1, irrep,
			fmtAt(sum.Harm, i, 1), fmtAt(sum.Fund, i, 1),
			fmtAt(sum.Corr, i, 1))
	}
	fmt.Fprintf(p.w, "ZPT = %.1f cm-1\n", sum.ZPT)
}

func (p *printer) rotRow(label string, rot []float64) {
	abc, ok := summarize.Triple(rot)
	cols := make([]string, 3)
	for i := range cols {
		if ok[i] {
			cols[i] = fmtAt(abc[:], i, 1)
		}
	}
	fmt.Fprintf(p.w, "%5s%14s%14s%14s\n", label, cols[0], cols[1], cols[2])
}

func (p *printer) rots(sum *summarize.Summary) {
	if len(sum.Rots) == 0 && len(sum.RotEquil) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.heading.Render("Rotational constants (MHz)"))
	fmt.Fprintf(p.w, "%5s%14s%14s%14s\n", "State", "A", "B", "C")
	if len(sum.RotEquil) > 0 {
		p.rotRow("e", sum.RotEquil)
	}
	for i, rot := range sum.Rots {
		if rot == nil {
			continue
		}
		label := "0"
		if i > 0 {
			label = fmt.Sprintf("v%d", i)
		}
		p.rotRow(label, rot)
	}
	if k, ok := sum.Kappa(); ok {
		fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("kappa = %.6f", k)))
	}
}

func (p *printer) distortion(sum *summarize.Summary) {
	consts := append(sum.Deltas.Constants(), sum.Phis.Constants()...)
	if len(consts) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.heading.Render("Distortion constants (MHz)"))
	for _, c := range consts {
		if c.Value == summarize.BadFloat {
			fmt.Fprintf(p.w, "%-8s%18s\n", c.Name, "*")
			continue
		}
		fmt.Fprintf(p.w, "%-8s%18.8e\n", c.Name, c.Value)
	}
}

func (p *printer) resonances(sum *summarize.Summary) {
	if len(sum.Fermi) > 0 {
		fmt.Fprintln(p.w, p.heading.Render("Fermi resonances"))
		keys := make([]int, 0, len(sum.Fermi))
		for k := range sum.Fermi {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, c := range keys {
			for _, pair := range sum.Fermi[c] {
				if pair[0] == pair[1] {
					fmt.Fprintf(p.w, "  2w%d = w%d\n", pair[0], c)
				} else {
					fmt.Fprintf(p.w, "  w%d + w%d = w%d\n",
						pair[0], pair[1], c)
				}
			}
		}
	}
	if len(sum.Coriolis) > 0 {
		fmt.Fprintln(p.w, p.heading.Render("Coriolis resonances"))
		for _, k := range sum.Coriolis.Keys() {
			axes := make([]string, 0, len(sum.Coriolis[k]))
			for _, a := range sum.Coriolis[k] {
				if a > 0 && a < len(axisNames) {
					axes = append(axes, axisNames[a])
				}
			}
			fmt.Fprintf(p.w, "  w%d = w%d: %s\n",
				k[0], k[1], strings.Join(axes, ", "))
		}
	}
}

func (p *printer) geom(sum *summarize.Summary) {
	if len(sum.Geom.Atoms) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.heading.Render("Geometry (Angstrom)"))
	fmt.Fprint(p.w, sum.Geom.String())
}

func (p *printer) curvils(sum *summarize.Summary) {
	if len(sum.Curvils) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.heading.Render("Curvilinear coordinates"))
	fmt.Fprintf(p.w, "%-14s%14s%14s\n", "Coord", "Equil", "Averaged")
	for i, c := range sum.Curvils {
		fmt.Fprintf(p.w, "%-14s%14s%14s\n", c,
			fmtAt(sum.Requil, i, 7), fmtAt(sum.Ralpha, i, 7))
	}
}
