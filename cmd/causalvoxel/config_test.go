package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "flat", cfg.World.Generator)
	require.Equal(t, int32(4), cfg.World.Radius)
	require.Equal(t, Duration(2*time.Second), cfg.Simulation.SandRainInterval)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
world:
  generator: perlin
  seed: 99
  radius: 8
simulation:
  sand_rain_interval: 250ms
  spring_interval: 1s
metrics:
  addr: ":9090"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "perlin", cfg.World.Generator)
	require.Equal(t, int64(99), cfg.World.Seed)
	require.Equal(t, int32(8), cfg.World.Radius)
	require.Equal(t, Duration(250*time.Millisecond), cfg.Simulation.SandRainInterval)
	require.Equal(t, Duration(time.Second), cfg.Simulation.SpringInterval)
	require.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "world:\n  generator: cubes\n  radius: 2\n"))
	require.ErrorContains(t, err, "unknown world.generator")

	_, err = loadConfig(writeConfig(t, "world:\n  generator: flat\n  radius: -1\n"))
	require.ErrorContains(t, err, "radius must be positive")

	_, err = loadConfig(writeConfig(t, "simulation:\n  sand_rain_interval: soon\n"))
	require.Error(t, err)
}
