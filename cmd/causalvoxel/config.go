package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration adds "2s"-style yaml syntax on top of time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config drives the serve command. The file is the single source so runs
// are reproducible.
type Config struct {
	World struct {
		// Generator is "flat" or "perlin".
		Generator string `yaml:"generator"`
		Seed      int64  `yaml:"seed"`
		Radius    int32  `yaml:"radius"`
	} `yaml:"world"`

	Simulation struct {
		// An interval of zero disables the layer.
		SandRainInterval Duration `yaml:"sand_rain_interval"`
		SpringInterval   Duration `yaml:"spring_interval"`
	} `yaml:"simulation"`

	Metrics struct {
		// Addr like ":9090"; empty disables the endpoint.
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.World.Generator = "flat"
	cfg.World.Radius = 4
	cfg.Simulation.SandRainInterval = Duration(2 * time.Second)
	cfg.Simulation.SpringInterval = Duration(5 * time.Second)
	return cfg
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.World.Radius <= 0 {
		return cfg, fmt.Errorf("config: world.radius must be positive, got %d", cfg.World.Radius)
	}
	switch cfg.World.Generator {
	case "flat", "perlin":
	default:
		return cfg, fmt.Errorf("config: unknown world.generator %q", cfg.World.Generator)
	}
	return cfg, nil
}
