// Command summarize prints the harmonic, fundamental, and resonance
// corrected frequencies, rotational and distortion constants, and
// resonances found in one or more SPECTRO output files.
//
// Usage:
//
//	summarize [flags] spectro.out [spectro2.out summary.json ...]
//
// Files ending in .json are read as the output of a previous -json
// run instead of being parsed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"bwestbro.com/summarize"
)

// Flags
var (
	jsonOut = flag.Bool("json", false, "write each summary as JSON")
	vibOnly = flag.Bool("vib", false,
		"only print the vibrational frequencies")
	eps = flag.Float64("eps", summarize.DefaultTolerance,
		"initial tolerance for symmetry classification")
	confFile = flag.String("config", "",
		"TOML file of default settings, overridden by other flags")
	jobs = flag.Int("jobs", runtime.NumCPU(),
		"maximum number of files to parse at once")
	verbose    = flag.Bool("verbose", false, "log failed symmetry classifications")
	color      = flag.Bool("color", false, "force colored output")
	cpuprofile = flag.String("cpu", "", "write a CPU profile")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] file...\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		usage()
		log.Fatalln("no input files given, aborting")
	}
	conf := DefaultConfig()
	if *confFile != "" {
		var err error
		conf, err = LoadConfig(*confFile)
		if err != nil {
			log.Fatalln(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		conf.apply(f.Name)
	})
	if err := conf.check(); err != nil {
		log.Fatalln(err)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalln(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	summarize.Verbose = conf.Verbose
	sums, err := LoadAll(context.Background(), args, conf)
	if err != nil {
		log.Fatalln(err)
	}
	if err := write(os.Stdout, args, sums, conf); err != nil {
		log.Fatalln(err)
	}
}
