package wildfire

import (
	"fmt"
	"strconv"
)

// Params holds the probabilities that drive initialization and spread. All
// values are fractions in [0, 1].
type Params struct {
	// PCatch is the chance an eligible tree ignites in one cycle.
	PCatch float64
	// Density is the fraction of sites holding a tree at cycle 0.
	Density float64
	// PBurning is the fraction of trees already on fire at cycle 0.
	PBurning float64
	// PNeighbor is the share of tree-like neighbors that must be burning,
	// strictly exceeded, before a tree may ignite.
	PNeighbor float64
}

// Config controls the wildfire simulation dimensions. Values are not
// validated here; the command line layer rejects out-of-range input before a
// world is built.
type Config struct {
	Size int
	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 10,
		Seed: 41,
		Params: Params{
			PCatch:    0.30,
			Density:   0.50,
			PBurning:  0.10,
			PNeighbor: 0.25,
		},
	}
}

// ApplyMap overrides fields of cfg from flag-style key/value pairs. Keys are
// size, seed, catch, density, burning and neighbor; probabilities are given
// as fractions.
func ApplyMap(cfg Config, m map[string]string) (Config, error) {
	for k, v := range m {
		switch k {
		case "size":
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return cfg, fmt.Errorf("size %q: must be a positive integer", v)
			}
			cfg.Size = parsed
		case "seed":
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("seed %q: %w", v, err)
			}
			cfg.Seed = parsed
		case "catch", "density", "burning", "neighbor":
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 || parsed > 1 {
				return cfg, fmt.Errorf("%s %q: must be a fraction in [0,1]", k, v)
			}
			switch k {
			case "catch":
				cfg.Params.PCatch = parsed
			case "density":
				cfg.Params.Density = parsed
			case "burning":
				cfg.Params.PBurning = parsed
			case "neighbor":
				cfg.Params.PNeighbor = parsed
			}
		default:
			return cfg, fmt.Errorf("unknown parameter %q", k)
		}
	}
	return cfg, nil
}
