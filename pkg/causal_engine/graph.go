package causal_engine

import "github.com/google/uuid"

// EventNode is a node in the causal DAG.
type EventNode struct {
	Event    Event
	Parents  []EventID
	Children []EventID
	Executed bool
}

// CausalGraph is an append-only DAG of events whose edges encode
// "must-happen-before" relationships.
//   - Nodes are never removed and edges are never rewritten after insertion.
//   - Parents of a newly inserted node all pre-exist, so the graph is acyclic
//     by construction; child lists are maintained as the inverse.
//   - Executed transitions only from false to true.
//
// Invariant: if A is a parent of B, A's world-write must be visible before B
// executes. Events with no ancestor/descendant relationship are
// spacelike-separated and may execute in any order, or in parallel.
//
// A graph is scratch space for a single cascade and is owned by one
// scheduler invocation; it is not safe for concurrent use.
type CausalGraph struct {
	nodes map[EventID]*EventNode
	// Insertion order, so frontier scans and diagnostics are reproducible.
	// Callers must not rely on frontier ordering.
	order []EventID
}

func NewCausalGraph() *CausalGraph {
	return &CausalGraph{nodes: make(map[EventID]*EventNode)}
}

// Insert appends a node holding event and links it under every listed
// parent. An unknown parent id gets no child link but stays in Parents, so
// the node never reaches the frontier; duplicate parents are harmless.
func (g *CausalGraph) Insert(event Event, parents []EventID) EventID {
	id := uuid.New()
	node := &EventNode{
		Event:   event,
		Parents: append([]EventID(nil), parents...),
	}
	g.nodes[id] = node
	g.order = append(g.order, id)

	for _, parentID := range parents {
		if parent, ok := g.nodes[parentID]; ok {
			parent.Children = append(parent.Children, id)
		}
	}
	return id
}

// InsertRoot appends a parentless node. Roots are on the frontier until
// executed.
func (g *CausalGraph) InsertRoot(event Event) EventID {
	return g.Insert(event, nil)
}

// MarkExecuted marks id executed. Idempotent; no-op for unknown ids.
func (g *CausalGraph) MarkExecuted(id EventID) {
	if node, ok := g.nodes[id]; ok {
		node.Executed = true
	}
}

// Get returns a snapshot of the node for id.
func (g *CausalGraph) Get(id EventID) (EventNode, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return EventNode{}, false
	}
	return EventNode{
		Event:    node.Event,
		Parents:  append([]EventID(nil), node.Parents...),
		Children: append([]EventID(nil), node.Children...),
		Executed: node.Executed,
	}, true
}

// Event returns the event stored at id.
func (g *CausalGraph) Event(id EventID) (Event, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return Event{}, false
	}
	return node.Event, true
}

func (g *CausalGraph) Len() int {
	return len(g.nodes)
}

func (g *CausalGraph) ExecutedCount() int {
	count := 0
	for _, node := range g.nodes {
		if node.Executed {
			count++
		}
	}
	return count
}

// AllIDs returns every node id in insertion order.
func (g *CausalGraph) AllIDs() []EventID {
	return append([]EventID(nil), g.order...)
}

// Frontier returns every non-executed node all of whose parents exist and
// are executed. The naive O(n) scan is fine: cascades are short-lived and
// the graph is discarded with them.
func (g *CausalGraph) Frontier() []EventID {
	var frontier []EventID
	for _, id := range g.order {
		node := g.nodes[id]
		if node.Executed {
			continue
		}
		ready := true
		for _, parentID := range node.Parents {
			parent, ok := g.nodes[parentID]
			if !ok || !parent.Executed {
				ready = false
				break
			}
		}
		if ready {
			frontier = append(frontier, id)
		}
	}
	return frontier
}

// Depth is 0 for roots and 1 + max(depth of parents) otherwise. Memoised so
// diamond-shaped ancestry stays linear.
func (g *CausalGraph) Depth(id EventID) int {
	memo := make(map[EventID]int)
	return g.depth(id, memo)
}

func (g *CausalGraph) depth(id EventID, memo map[EventID]int) int {
	if d, ok := memo[id]; ok {
		return d
	}
	node, ok := g.nodes[id]
	if !ok || len(node.Parents) == 0 {
		memo[id] = 0
		return 0
	}
	max := 0
	for _, parentID := range node.Parents {
		if d := g.depth(parentID, memo); d > max {
			max = d
		}
	}
	memo[id] = max + 1
	return max + 1
}
