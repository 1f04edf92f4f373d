package domain

import (
	"fmt"
	"strings"
)

// Edge connects a user to one of the numbers they blocked.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the blocked-numbers relationship graph of a single user.
type Graph struct {
	Owner string   `json:"owner"`
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// NewBlockGraph builds a star graph with the owner at the center.
// Duplicate blocked entries collapse into a single node and edge.
func NewBlockGraph(owner string, blocked []string) *Graph {
	g := &Graph{
		Owner: owner,
		Nodes: []string{owner},
		Edges: []Edge{},
	}

	seen := map[string]bool{owner: true}
	for _, n := range blocked {
		if seen[n] {
			continue
		}
		seen[n] = true
		g.Nodes = append(g.Nodes, n)
		g.Edges = append(g.Edges, Edge{From: owner, To: n})
	}

	return g
}

// DOT renders the graph in Graphviz format.
func (g *Graph) DOT() string {
	var b strings.Builder

	b.WriteString("graph blocked {\n")
	fmt.Fprintf(&b, "  label=%q;\n", "Blocked Numbers for "+g.Owner)
	b.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue];\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %q;\n", n)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %q -- %q;\n", e.From, e.To)
	}
	b.WriteString("}\n")

	return b.String()
}
