package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"bwestbro.com/summarize"
)

// Errors
var (
	ErrFormat    = errors.New("unrecognized output format")
	ErrTolerance = errors.New("symmetry tolerance out of range")
)

// RawConf is the layout of the TOML configuration file
type RawConf struct {
	Format    string
	Vib       bool
	Tolerance float64
	Jobs      int
	Verbose   bool
	Color     bool
}

type Format int

const (
	Text Format = iota
	JSON
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("%w: %q", ErrFormat, s)
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	conf.Format, err = ParseFormat(rc.Format)
	if err != nil {
		return conf, err
	}
	conf.Vib = rc.Vib
	conf.Tolerance = rc.Tolerance
	conf.Jobs = rc.Jobs
	conf.Verbose = rc.Verbose
	conf.Color = rc.Color
	return conf, conf.check()
}

type Config struct {
	Format    Format
	Vib       bool
	Tolerance float64
	Jobs      int
	Verbose   bool
	Color     bool

	// classify JSON inputs again even when they already carry irreps
	Reclassify bool
}

func defaultRaw() RawConf {
	return RawConf{
		Format:    "text",
		Tolerance: summarize.DefaultTolerance,
		Jobs:      runtime.NumCPU(),
	}
}

// DefaultConfig is the configuration used without a -config file
func DefaultConfig() Config {
	conf, _ := defaultRaw().ToConfig()
	return conf
}

func (c *Config) check() error {
	if c.Tolerance <= 0 || c.Tolerance > summarize.MaxTolerance {
		return fmt.Errorf("%w: %g not in (0, %g]",
			ErrTolerance, c.Tolerance, summarize.MaxTolerance)
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	return nil
}

// LoadConfig reads a TOML configuration from filename. Settings
// missing from the file keep their defaults
func LoadConfig(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return Config{}, err
	}
	rc := defaultRaw()
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return rc.ToConfig()
}

// apply overrides the setting controlled by the command-line flag
// name with the flag's value
func (c *Config) apply(name string) {
	switch name {
	case "json":
		if *jsonOut {
			c.Format = JSON
		}
	case "vib":
		c.Vib = *vibOnly
	case "eps":
		c.Tolerance = *eps
		c.Reclassify = true
	case "jobs":
		c.Jobs = *jobs
	case "verbose":
		c.Verbose = *verbose
	case "color":
		c.Color = *color
	}
}
