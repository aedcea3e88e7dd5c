// Package callgraph maps the direct call edges discovered by pass 1 of
// the disassembly onto a lattice graph for DOT rendering.
package callgraph

import (
	"github.com/zboralski/lattice"

	"disx86/internal/dis"
)

// Build constructs a lattice.Graph from the disassembler's call edges.
// Every function that appears as a caller becomes a node; every resolved
// caller/callee pair becomes an edge. Edges with an empty callee are
// skipped.
func Build(edges []dis.CallEdge) *lattice.Graph {
	g := &lattice.Graph{}
	seen := map[string]bool{}
	for _, e := range edges {
		if e.Caller == "" || e.Callee == "" {
			continue
		}
		if !seen[e.Caller] {
			seen[e.Caller] = true
			g.Nodes = append(g.Nodes, e.Caller)
		}
		g.Edges = append(g.Edges, lattice.Edge{
			Caller: e.Caller,
			Callee: e.Callee,
		})
	}
	g.Dedup()
	return g
}
