// Package config validates the command line settings of a wildfire run and
// converts them into an engine configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wildfire/internal/sims/wildfire"
)

// ErrInvalidOption is wrapped by every validation failure.
var ErrInvalidOption = errors.New("invalid option")

// Display modes.
const (
	DisplayOverlay = "overlay"
	DisplayPrint   = "print"
	DisplayWindow  = "window"
)

// MaxCycles bounds an explicit cycle budget.
const MaxCycles = 10000

// Options are the user-facing settings. Probabilities are integer
// percentages as typed on the command line.
type Options struct {
	Size     int   `yaml:"size"`
	Catch    int   `yaml:"catch"`
	Density  int   `yaml:"density"`
	Burning  int   `yaml:"burning"`
	Neighbor int   `yaml:"neighbor"`
	Seed     int64 `yaml:"seed"`

	// Cycles is the print-mode budget; negative means unbounded.
	Cycles  int    `yaml:"cycles"`
	Display string `yaml:"display"`
	TPS     int    `yaml:"tps"`

	CSVPath   string `yaml:"csv"`
	ChartPath string `yaml:"chart"`
}

// Default returns the settings used when no flag or preset overrides them.
func Default() Options {
	return Options{
		Size:     10,
		Catch:    30,
		Density:  50,
		Burning:  10,
		Neighbor: 25,
		Seed:     41,
		Cycles:   wildfire.Unbounded,
		Display:  DisplayOverlay,
		TPS:      2,
	}
}

// Load reads a YAML preset over the defaults. Unknown keys are an error so a
// misspelt setting is never silently ignored.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read preset %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil {
		return opts, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks every setting against its accepted range.
func (o Options) Validate() error {
	var errs []error
	if o.Size < 5 || o.Size > 40 {
		errs = append(errs, fmt.Errorf("%w: simulation grid size must be an integer in [5...40], got %d", ErrInvalidOption, o.Size))
	}
	if o.Catch < 1 || o.Catch > 100 {
		errs = append(errs, fmt.Errorf("%w: probability a tree will catch fire must be an integer in [1...100], got %d", ErrInvalidOption, o.Catch))
	}
	if o.Density < 1 || o.Density > 100 {
		errs = append(errs, fmt.Errorf("%w: density of trees in the grid must be an integer in [1...100], got %d", ErrInvalidOption, o.Density))
	}
	if o.Burning < 1 || o.Burning > 100 {
		errs = append(errs, fmt.Errorf("%w: proportion already burning must be an integer in [1...100], got %d", ErrInvalidOption, o.Burning))
	}
	if o.Neighbor < 0 || o.Neighbor > 100 {
		errs = append(errs, fmt.Errorf("%w: neighbors influence catching fire must be an integer in [0...100], got %d", ErrInvalidOption, o.Neighbor))
	}
	if o.Cycles > MaxCycles {
		errs = append(errs, fmt.Errorf("%w: number of cycles to print must be an integer in [0...%d], got %d", ErrInvalidOption, MaxCycles, o.Cycles))
	}
	switch o.Display {
	case DisplayOverlay, DisplayPrint, DisplayWindow:
	default:
		errs = append(errs, fmt.Errorf("%w: display must be one of overlay, print, window, got %q", ErrInvalidOption, o.Display))
	}
	if o.TPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidOption, o.TPS))
	}
	return errors.Join(errs...)
}

// ValidateSim checks an engine configuration, typically one that has been
// through wildfire.ApplyMap, against the same ranges as Validate.
// Probabilities are fractions here.
func ValidateSim(cfg wildfire.Config) error {
	var errs []error
	if cfg.Size < 5 || cfg.Size > 40 {
		errs = append(errs, fmt.Errorf("%w: simulation grid size must be an integer in [5...40], got %d", ErrInvalidOption, cfg.Size))
	}
	p := cfg.Params
	if p.PCatch <= 0 || p.PCatch > 1 {
		errs = append(errs, fmt.Errorf("%w: probability a tree will catch fire must be in (0...1], got %g", ErrInvalidOption, p.PCatch))
	}
	if p.Density <= 0 || p.Density > 1 {
		errs = append(errs, fmt.Errorf("%w: density of trees in the grid must be in (0...1], got %g", ErrInvalidOption, p.Density))
	}
	if p.PBurning <= 0 || p.PBurning > 1 {
		errs = append(errs, fmt.Errorf("%w: proportion already burning must be in (0...1], got %g", ErrInvalidOption, p.PBurning))
	}
	if p.PNeighbor < 0 || p.PNeighbor > 1 {
		errs = append(errs, fmt.Errorf("%w: neighbors influence catching fire must be in [0...1], got %g", ErrInvalidOption, p.PNeighbor))
	}
	return errors.Join(errs...)
}

// SimConfig converts the percentages into engine fractions.
func (o Options) SimConfig() wildfire.Config {
	return wildfire.Config{
		Size: o.Size,
		Seed: o.Seed,
		Params: wildfire.Params{
			PCatch:    percent(o.Catch),
			Density:   percent(o.Density),
			PBurning:  percent(o.Burning),
			PNeighbor: percent(o.Neighbor),
		},
	}
}

// Budget returns the cycle budget for the controller. Overlay and window runs
// are unbounded unless a cycle count was given.
func (o Options) Budget() int {
	if o.Cycles < 0 {
		return wildfire.Unbounded
	}
	return o.Cycles
}

func percent(v int) float64 {
	return float64(v) / 100
}
