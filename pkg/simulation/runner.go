package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/engine_metrics"
	"github.com/jtomasevic/causalvoxel/pkg/event_bus"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// DefaultMaxSteps bounds each per-tick cascade. A longer cascade is cut
// off: its graph, pending events included, is dropped at the end of the
// tick, and only the writes already applied to the world carry over. The
// next tick starts a fresh graph from the layer's new root events.
const DefaultMaxSteps = 1000

// Runner drives simulation layers against a shared world.
//
// The graph for each tick is scratch space owned by that tick; only the
// world carries state across ticks.
type Runner struct {
	world    *voxel_world.World
	rules    *causal_engine.RuleSet
	bus      *event_bus.Bus
	metrics  *engine_metrics.Metrics
	log      zerolog.Logger
	maxSteps int

	wg sync.WaitGroup
}

// NewRunner wires a runner. bus and metrics may be nil when no collaborator
// consumes them.
func NewRunner(
	world *voxel_world.World,
	rules *causal_engine.RuleSet,
	bus *event_bus.Bus,
	metrics *engine_metrics.Metrics,
	log zerolog.Logger,
) *Runner {
	return &Runner{
		world:    world,
		rules:    rules,
		bus:      bus,
		metrics:  metrics,
		log:      log,
		maxSteps: DefaultMaxSteps,
	}
}

// Start spawns one goroutine per layer. Layers stop when ctx is cancelled;
// Wait blocks until they have all returned.
func (r *Runner) Start(ctx context.Context, layers ...Layer) {
	for _, layer := range layers {
		r.wg.Add(1)
		go r.runLayer(ctx, layer)
	}
}

// Wait blocks until every layer goroutine has stopped.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) runLayer(ctx context.Context, layer Layer) {
	defer r.wg.Done()

	log := r.log.With().Str("layer", layer.Name()).Logger()
	log.Info().Dur("interval", layer.Interval()).Msg("simulation layer started")

	ticker := time.NewTicker(layer.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("simulation layer stopped")
			return
		case <-ticker.C:
			r.tick(log, layer)
		}
	}
}

func (r *Runner) tick(log zerolog.Logger, layer Layer) {
	events := layer.GenerateEvents(r.world)
	if len(events) == 0 {
		return
	}

	// Fresh graph + scheduler per tick, the same pattern player actions use.
	graph := causal_engine.NewCausalGraph()
	for _, event := range events {
		graph.InsertRoot(event)
	}

	scheduler := causal_engine.NewScheduler()
	start := time.Now()
	executed := scheduler.RunUntilQuiet(r.world, graph, r.rules, r.maxSteps)
	elapsed := time.Since(start)

	if r.metrics != nil {
		r.metrics.RecordCascade(executed, elapsed)
		r.metrics.ChunksLoaded.Set(float64(r.world.ChunkCount()))
		r.metrics.DirtyChunks.Set(float64(r.world.DirtyCount()))
	}

	if r.bus != nil {
		changes := event_bus.CollectBlockChanges(graph)
		if len(changes) > 0 {
			r.bus.Publish(event_bus.WorldChangeBatch{
				Source:  layer.Name(),
				Changes: changes,
			})
		}
	}

	log.Debug().
		Int("roots", len(events)).
		Int("executed", executed).
		Dur("elapsed", elapsed).
		Msg("cascade complete")
}
