package block_rules

import "github.com/jtomasevic/causalvoxel/pkg/causal_engine"

// Standard assembles the reference rule set: gravity, water, lava.
func Standard() *causal_engine.RuleSet {
	rules := causal_engine.NewRuleSet()
	rules.Add(Gravity)
	rules.Add(FluidFlow(WaterKind))
	rules.Add(FluidFlow(LavaKind))
	return rules
}
