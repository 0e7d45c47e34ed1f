package wildfire

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters describes the configuration of the world.
func (w *World) Parameters() core.ParameterSnapshot {
	return ParameterSnapshot(w.cfg)
}

// ParameterSnapshot groups the settings of cfg for display.
func ParameterSnapshot(cfg Config) core.ParameterSnapshot {
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", cfg.Size, "grid side length"),
				int64Param("seed", "Seed", cfg.Seed, "random seed"),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("catch", "Catch probability", params.PCatch, "chance an eligible tree ignites"),
				floatParam("density", "Density", params.Density, "fraction of sites holding a tree"),
				floatParam("burning", "Initially burning", params.PBurning, "fraction of trees on fire at cycle 0"),
				floatParam("neighbor", "Neighbor threshold", params.PNeighbor, "burning share of neighbors to exceed"),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(value),
		Description: desc,
	}
}

func int64Param(key, label string, value int64, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeInt,
		Value:       strconv.FormatInt(value, 10),
		Description: desc,
	}
}

func floatParam(key, label string, value float64, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeFloat,
		Value:       strconv.FormatFloat(value, 'f', -1, 64),
		Description: desc,
	}
}
