package causal_engine

import "github.com/jtomasevic/causalvoxel/pkg/voxel_world"

// WorldReader is the view of the world a rule is allowed: reads only.
// *voxel_world.World satisfies it.
type WorldReader interface {
	GetBlock(pos voxel_world.BlockPos) voxel_world.BlockID
}

// Rule maps the current world state and an event that just executed to zero
// or more consequent events.
//
// Rules must be pure and local:
//   - no state beyond the world view; two invocations with the same world
//     snapshot and event produce the same events.
//   - only blocks in a bounded neighbourhood of the event's position are
//     read (the standard rules read at most the six face neighbours plus
//     the position itself).
//
// Locality is what makes causal independence -- and therefore parallelism --
// possible. The engine trusts it rather than enforcing it.
type Rule func(world WorldReader, event Event) []Event

// RuleSet is an ordered collection of rules. When an event executes, every
// rule is consulted and their outputs are merged into the causal graph as
// children of the triggering event.
type RuleSet struct {
	rules []Rule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

func (rs *RuleSet) Add(rule Rule) {
	rs.rules = append(rs.rules, rule)
}

func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Evaluate concatenates every rule's output in registration order.
func (rs *RuleSet) Evaluate(world WorldReader, event Event) []Event {
	var out []Event
	for _, rule := range rs.rules {
		out = append(out, rule(world, event)...)
	}
	return out
}
