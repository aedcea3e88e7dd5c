package callgraph

import (
	"testing"

	"disx86/internal/dis"
)

func TestBuild(t *testing.T) {
	edges := []dis.CallEdge{
		{Caller: "main", Callee: "parse"},
		{Caller: "main", Callee: "emit"},
		{Caller: "parse", Callee: "emit"},
		{Caller: "parse", Callee: ""}, // unresolved, skipped
	}
	g := Build(edges)
	if len(g.Nodes) != 2 {
		t.Errorf("nodes = %v, want main and parse", g.Nodes)
	}
	if len(g.Edges) != 3 {
		t.Errorf("got %d edges, want 3", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Caller == "" || e.Callee == "" {
			t.Errorf("empty endpoint in edge %+v", e)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil)
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("empty input produced %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
}
