// Package simulation runs ambient world processes.
//
// Each Layer ticks on its own goroutine, periodically generating root
// causal events. Those events are run through a fresh graph + scheduler,
// and the resulting block changes are published to the event bus.
package simulation

import (
	"time"

	"github.com/jtomasevic/causalvoxel/pkg/causal_engine"
	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// Layer is a pluggable simulation process that generates root causal
// events on a timer.
//
// Layers are expected to be cheap per tick; heavy work should be amortised
// across ticks or done lazily.
type Layer interface {
	// Name is used for logging and as the change-batch source.
	Name() string

	// Interval is how often this layer ticks.
	Interval() time.Duration

	// GenerateEvents inspects the world and returns root events to inject.
	// Returning nothing means "nothing to do this tick".
	GenerateEvents(world *voxel_world.World) []causal_engine.Event
}

// LayerFunc adapts a plain function into a Layer.
type LayerFunc struct {
	LayerName    string
	TickInterval time.Duration
	Generate     func(world *voxel_world.World) []causal_engine.Event
}

func (l LayerFunc) Name() string { return l.LayerName }

func (l LayerFunc) Interval() time.Duration { return l.TickInterval }

func (l LayerFunc) GenerateEvents(world *voxel_world.World) []causal_engine.Event {
	return l.Generate(world)
}
