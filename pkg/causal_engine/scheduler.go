package causal_engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jtomasevic/causalvoxel/pkg/voxel_world"
)

// DefaultMaxEventsPerStep bounds the number of events executed per step,
// providing back-pressure against runaway cascades.
const DefaultMaxEventsPerStep = 10_000

// Scheduler drains the causal frontier, applying events to the world and
// generating consequent events via the rule set.
//
// Provides both sequential (Step) and parallel (StepParallel) execution.
// None of its operations can fail: writes to unloaded chunks create the
// chunk, and rule panics are programmer errors.
type Scheduler struct {
	MaxEventsPerStep int
}

func NewScheduler() *Scheduler {
	return &Scheduler{MaxEventsPerStep: DefaultMaxEventsPerStep}
}

// Step executes one frontier wave sequentially and returns the number of
// events executed. Consequents inserted during the wave become candidates
// for the next step, never this one.
func (s *Scheduler) Step(world *voxel_world.World, graph *CausalGraph, rules *RuleSet) int {
	executed := 0
	for _, id := range graph.Frontier() {
		if executed >= s.MaxEventsPerStep {
			break
		}
		event, ok := graph.Event(id)
		if !ok {
			continue
		}

		applyEvent(world, event)
		graph.MarkExecuted(id)
		executed++

		for _, consequent := range rules.Evaluate(world, event) {
			graph.Insert(consequent, []EventID{id})
		}
	}
	return executed
}

// RunUntilQuiet repeats Step until a step executes nothing or maxSteps is
// reached, and returns the total executed. A cascade that exhausts maxSteps
// leaves a non-empty frontier behind; the caller may resume or discard.
func (s *Scheduler) RunUntilQuiet(world *voxel_world.World, graph *CausalGraph, rules *RuleSet, maxSteps int) int {
	total := 0
	for i := 0; i < maxSteps; i++ {
		n := s.Step(world, graph, rules)
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// frontierEvent pairs a frontier id with its cloned event for the scatter
// phase.
type frontierEvent struct {
	id    EventID
	event Event
}

// groupResult carries one group's consequents back to the gather phase.
type groupResult struct {
	id          EventID
	consequents []Event
}

// StepParallel executes one frontier wave with snapshot-scatter-gather:
//
//  1. The frontier (trimmed to MaxEventsPerStep) is partitioned by the
//     chunk of each event's position. Events in distinct chunks are
//     spacelike-separated for the duration of a wave.
//  2. Groups run concurrently; within a group events run sequentially,
//     applying to the world and collecting consequents thread-locally.
//  3. A serial gather splices the consequents into the graph and marks the
//     ids executed, keeping graph mutation single-threaded.
func (s *Scheduler) StepParallel(world *voxel_world.World, graph *CausalGraph, rules *RuleSet) int {
	frontier := graph.Frontier()
	if len(frontier) == 0 {
		return 0
	}

	taken := 0
	chunkGroups := make(map[voxel_world.ChunkPos][]frontierEvent)
	for _, id := range frontier {
		if taken >= s.MaxEventsPerStep {
			break
		}
		event, ok := graph.Event(id)
		if !ok {
			continue
		}
		chunk := event.Chunk()
		chunkGroups[chunk] = append(chunkGroups[chunk], frontierEvent{id: id, event: event})
		taken++
	}

	groups := make([][]frontierEvent, 0, len(chunkGroups))
	for _, group := range chunkGroups {
		groups = append(groups, group)
	}

	results := make([][]groupResult, len(groups))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, group := range groups {
		eg.Go(func() error {
			local := make([]groupResult, 0, len(group))
			for _, fe := range group {
				applyEvent(world, fe.event)
				local = append(local, groupResult{
					id:          fe.id,
					consequents: rules.Evaluate(world, fe.event),
				})
			}
			results[i] = local
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = eg.Wait()

	executed := 0
	for _, groupResults := range results {
		for _, r := range groupResults {
			graph.MarkExecuted(r.id)
			executed++
			for _, consequent := range r.consequents {
				graph.Insert(consequent, []EventID{r.id})
			}
		}
	}
	return executed
}

// RunUntilQuietParallel repeats StepParallel until quiescence or maxSteps.
func (s *Scheduler) RunUntilQuietParallel(world *voxel_world.World, graph *CausalGraph, rules *RuleSet, maxSteps int) int {
	total := 0
	for i := 0; i < maxSteps; i++ {
		n := s.StepParallel(world, graph, rules)
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

func applyEvent(world *voxel_world.World, event Event) {
	switch event.Kind {
	case KindBlockSet:
		world.SetBlock(event.Pos, event.New)
	case KindBlockNotify:
		// No-op write: the event exists to re-trigger rule evaluation.
	}
}
