package bench

import (
	"sort"

	"github.com/san-kum/neutronperf/internal/series"
)

// DefaultPreset is the full MCViNE vs McVineGPU measurement campaign.
const DefaultPreset = "mcvine"

// Presets holds the built-in measurement datasets.
var Presets = map[string]*Measurement{
	"mcvine": {
		Name:     "mcvine",
		CPULabel: "MCViNE",
		GPULabel: "McVineGPU",
		Sizes:    series.Series{1e6, 3e6, 6e6, 1e7, 3e7, 6e7, 1e8},
		CPUTimes: series.Series{50.0, 147.0, 293.0, 491.0, 1473.0, 3005.0, 4977.0},
		GPUTimes: series.Series{3.72244, 4.24126, 4.71751, 5.69286, 8.8244, 14.7054, 21.627},
	},
	// Earlier GPU measurement run, five sizes only.
	"mcvine-early": {
		Name:     "mcvine-early",
		CPULabel: "MCViNE",
		GPULabel: "McVineGPU",
		Sizes:    series.Series{1e6, 3e6, 6e6, 1e7, 3e7},
		CPUTimes: series.Series{50.0, 147.0, 293.0, 491.0, 1473.0},
		GPUTimes: series.Series{3.678725, 4.368812, 4.8381, 7.910193, 25.655962},
	},
	"sample": {
		Name:     "sample",
		CPULabel: "MCViNE",
		GPULabel: "McVineGPU",
		Sizes:    series.Series{1e6, 3e6},
		CPUTimes: series.Series{50.0, 147.0},
		GPUTimes: series.Series{3.72244, 4.24126},
	},
}

// Get returns the named preset, or ErrUnknownPreset.
func Get(name string) (*Measurement, error) {
	m, ok := Presets[name]
	if !ok {
		return nil, ErrUnknownPreset
	}
	return m, nil
}

// List returns the preset names in sorted order.
func List() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
