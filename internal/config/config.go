package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 960
	DefaultHeight     = 600
	DefaultOutput     = "speed_comparison.svg"
	DefaultCPUColor   = "#0000FF"
	DefaultGPUColor   = "#74B71B"
	DefaultCPUAxisMax = 50000.0
)

// Config holds chart presentation settings. Measurement data never comes
// from here; datasets are compiled-in presets.
type Config struct {
	Title  string     `yaml:"title"`
	XLabel string     `yaml:"x_label"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Output string     `yaml:"output"`
	CPU    AxisConfig `yaml:"cpu"`
	GPU    AxisConfig `yaml:"gpu"`
}

// AxisConfig styles one throughput axis. Max of 0 means auto-fit to data.
type AxisConfig struct {
	Label string  `yaml:"label"`
	Color string  `yaml:"color"`
	Max   float64 `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:  "Speed Comparison of MCViNE vs McVineGPU",
		XLabel: "Number of Neutrons",
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Output: DefaultOutput,
		CPU: AxisConfig{
			Color: DefaultCPUColor,
			// Fixed upper bound keeps the CPU curve readable next to GPU
			// throughput an order of magnitude larger.
			Max: DefaultCPUAxisMax,
		},
		GPU: AxisConfig{
			Color: DefaultGPUColor,
			Max:   0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
