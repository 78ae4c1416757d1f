package main

import (
	"context"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jtomasevic/causalvoxel/pkg/block_rules"
	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/engine_metrics"
	"github.com/jtomasevic/causalvoxel/pkg/event_bus"
	"github.com/jtomasevic/causalvoxel/pkg/simulation"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
	"github.com/jtomasevic/causalvoxel/pkg/world_gen"
)

func newServeCmd(verbose *bool) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ambient simulation until interrupted",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger(*verbose)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			world := voxel_world.NewWorld()
			var gen world_gen.Generator = world_gen.Flat{}
			if cfg.World.Generator == "perlin" {
				gen = world_gen.NewPerlinTerrain(cfg.World.Seed)
			}
			world_gen.Populate(world, gen, cfg.World.Radius)
			log.Info().
				Str("generator", cfg.World.Generator).
				Int("chunks", world.ChunkCount()).
				Msg("world ready")

			registry := prometheus.NewRegistry()
			metrics := engine_metrics.New(registry)
			bus := event_bus.NewBus(event_bus.DefaultCapacity)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Metrics.Addr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
				server := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
				go func() {
					log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics endpoint up")
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error().Err(err).Msg("metrics endpoint failed")
					}
				}()
				defer server.Close()
			}

			// Log every batch that crosses the bus, the way connected
			// sessions would consume it.
			changes, cancelSub := bus.Subscribe()
			defer cancelSub()
			go func() {
				for batch := range changes {
					log.Debug().
						Str("source", batch.Source).
						Int("changes", len(batch.Changes)).
						Msg("world changes published")
				}
			}()

			runner := simulation.NewRunner(world, block_rules.Standard(), bus, metrics, log)
			runner.Start(ctx, ambientLayers(cfg)...)

			log.Info().Msg("simulation running; ctrl-c to stop")
			<-ctx.Done()
			runner.Wait()
			log.Info().Int("dirty_chunks", len(world.TakeDirtyChunks())).Msg("shutdown")
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to yaml config")
	return cmd
}

func ambientLayers(cfg Config) []simulation.Layer {
	span := int64(cfg.World.Radius) * voxel_world.SectionSize

	randomSurfacePos := func(rng *rand.Rand, y int64) voxel_world.BlockPos {
		return voxel_world.NewBlockPos(rng.Int63n(2*span)-span, y, rng.Int63n(2*span)-span)
	}

	var layers []simulation.Layer

	if cfg.Simulation.SandRainInterval > 0 {
		rng := rand.New(rand.NewSource(cfg.World.Seed))
		layers = append(layers, simulation.LayerFunc{
			LayerName:    "sand_rain",
			TickInterval: time.Duration(cfg.Simulation.SandRainInterval),
			Generate: func(_ *voxel_world.World) []causal_engine.Event {
				return []causal_engine.Event{causal_engine.BlockSet(
					randomSurfacePos(rng, 24), block_rules.Air, block_rules.Sand)}
			},
		})
	}

	if cfg.Simulation.SpringInterval > 0 {
		rng := rand.New(rand.NewSource(cfg.World.Seed + 1))
		layers = append(layers, simulation.LayerFunc{
			LayerName:    "springs",
			TickInterval: time.Duration(cfg.Simulation.SpringInterval),
			Generate: func(world *voxel_world.World) []causal_engine.Event {
				// Only open a spring on solid ground, so the cascade is a
				// spread rather than a long fall.
				pos := randomSurfacePos(rng, 6)
				if block_rules.IsSolid(world.GetBlock(pos.Down())) && world.GetBlock(pos) == block_rules.Air {
					return []causal_engine.Event{causal_engine.BlockSet(
						pos, block_rules.Air, block_rules.Water)}
				}
				return nil
			},
		})
	}

	return layers
}
