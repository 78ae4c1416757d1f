package causal_engine

import (
	"fmt"
	"strings"
)

// ToDOT exports the graph in Graphviz DOT format. Executed BlockSet nodes
// are green, executed notifies yellow, pending nodes grey; edges run
// parent -> child.
func (g *CausalGraph) ToDOT() string {
	var out strings.Builder
	out.WriteString("digraph causal {\n  rankdir=BT;\n  node [shape=box, fontname=\"monospace\", fontsize=10];\n")

	for _, id := range g.order {
		node := g.nodes[id]

		var color string
		switch node.Event.Kind {
		case KindBlockSet:
			color = "#d4edda"
		default:
			color = "#fff3cd"
		}
		fill := "#f8f9fa"
		if node.Executed {
			fill = color
		}

		fmt.Fprintf(&out, "  %q [label=%q, style=filled, fillcolor=%q];\n",
			id.String(), node.Event.String(), fill)
		for _, parentID := range node.Parents {
			fmt.Fprintf(&out, "  %q -> %q;\n", parentID.String(), id.String())
		}
	}

	out.WriteString("}\n")
	return out.String()
}

// DumpLevels renders the graph grouped by causal depth, deepest first.
// Purely diagnostic.
func (g *CausalGraph) DumpLevels() string {
	memo := make(map[EventID]int)
	grouped := make(map[int][]EventID)
	maxLevel := 0
	for _, id := range g.order {
		lvl := g.depth(id, memo)
		grouped[lvl] = append(grouped[lvl], id)
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	var out strings.Builder
	for lvl := maxLevel; lvl >= 0; lvl-- {
		fmt.Fprintf(&out, "[Level %d]\n", lvl)
		ids := grouped[lvl]
		for i, id := range ids {
			prefix := "├──"
			if i == len(ids)-1 {
				prefix = "└──"
			}
			node := g.nodes[id]
			mark := " "
			if node.Executed {
				mark = "x"
			}
			fmt.Fprintf(&out, "%s [%s] %s (%s)\n", prefix, mark, node.Event.String(), id.String()[:8])
		}
	}
	return out.String()
}
