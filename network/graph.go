// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"gonum.org/v1/gonum/graph/multi"
)

// DirectedGraph exports the topology as a gonum weighted multigraph. Node
// IDs are node indices; every edge becomes its own line, so parallel edges
// survive. Line weights come from weights (one per edge), or from the
// edge upper bounds when weights is nil.
func (n *Network) DirectedGraph(weights []float64) (*multi.WeightedDirectedGraph, error) {
	if weights != nil && len(weights) != len(n.edges) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWeightLength, len(weights), len(n.edges))
	}

	g := multi.NewWeightedDirectedGraph()
	for i := range n.nodes {
		g.AddNode(multi.Node(i))
	}
	for i, e := range n.edges {
		w := e.UB
		if weights != nil {
			w = weights[i]
		}
		g.SetWeightedLine(g.NewWeightedLine(multi.Node(e.Source), multi.Node(e.Target), w))
	}
	return g, nil
}
