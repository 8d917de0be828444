// SPDX-License-Identifier: MIT
// Package: costnet/network
//
// network.go — Node, Edge and the Network aggregate.
//
// Invariants (enforced by New and therefore by every reader):
//   - Node.Index == position in Nodes(); labels are unique and non-empty.
//   - Edge.Index == position in Edges(); Source/Target are valid node
//     indices and From/To are their labels.
//   - LB <= UB, neither NaN.
//   - Model().NumEdges() == NumEdges().

package network

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/lookup"
)

// Node is a vertex of the network.
type Node struct {
	Index  int
	Label  string
	X, Y   float64
	Zone   bool    // origin/destination zone (road) or source/sink (gas)
	Demand float64 // net withdrawal; positive at exits, negative at entries
}

// Edge is a directed arc. Its cost coefficients live in the network's
// model at row Index.
type Edge struct {
	Index          int
	Source, Target int
	From, To       string
	LB, UB         float64
}

// Network owns nodes, edges and exactly one cost model. It is immutable
// after construction.
type Network struct {
	name   string
	nodes  []Node
	edges  []Edge
	model  cost.Model
	labels   *lookup.Table
	logger   *zap.Logger
	prettify bool
}

// New validates and assembles a network. Node indices are reassigned from
// slice order. Edge endpoints are resolved from From/To when set and from
// Source/Target otherwise. A nil model means zero cost on every edge.
//
// Only WithName, WithLogger, WithPrettify and the logging and prettify
// parts of WithConfig affect New.
func New(nodes []Node, edges []Edge, model cost.Model, opts ...Option) (*Network, error) {
	s := newSettings(opts)

	labels := lookup.New(len(nodes))
	ns := make([]Node, len(nodes))
	for i, n := range nodes {
		if _, err := labels.Add(n.Label); err != nil {
			return nil, fmt.Errorf("network: node %d: %w", i, err)
		}
		n.Index = i
		ns[i] = n
	}

	es := make([]Edge, len(edges))
	for i, e := range edges {
		var err error
		if e.Source, e.From, err = endpoint(labels, e.From, e.Source); err != nil {
			return nil, fmt.Errorf("network: edge %d source: %w", i, err)
		}
		if e.Target, e.To, err = endpoint(labels, e.To, e.Target); err != nil {
			return nil, fmt.Errorf("network: edge %d target: %w", i, err)
		}
		if math.IsNaN(e.LB) || math.IsNaN(e.UB) || e.LB > e.UB {
			return nil, fmt.Errorf("%w: edge %d (%s→%s) lb=%v ub=%v", ErrBounds, i, e.From, e.To, e.LB, e.UB)
		}
		e.Index = i
		es[i] = e
	}

	if model == nil {
		model = cost.ZeroPolynomial(len(es))
	}
	if model.NumEdges() != len(es) {
		return nil, fmt.Errorf("%w: model has %d rows, network has %d edges", ErrEdgeCount, model.NumEdges(), len(es))
	}

	return &Network{
		name:     s.name,
		nodes:    ns,
		edges:    es,
		model:    model,
		labels:   labels,
		logger:   s.logger,
		prettify: s.prettify,
	}, nil
}

// endpoint resolves one edge end to (index, label).
func endpoint(labels *lookup.Table, label string, index int) (int, string, error) {
	if label != "" {
		i, err := labels.Index(label)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %q", ErrUnknownNode, label)
		}
		return i, label, nil
	}
	l, err := labels.Label(index)
	if err != nil {
		return 0, "", fmt.Errorf("%w: index %d", ErrUnknownNode, index)
	}
	return index, l, nil
}

// Name is the network name; may be empty.
func (n *Network) Name() string { return n.name }

// NumNodes returns the node count.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumEdges returns the edge count.
func (n *Network) NumEdges() int { return len(n.edges) }

// Nodes returns a copy of the nodes in index order.
func (n *Network) Nodes() []Node { return append([]Node(nil), n.nodes...) }

// Edges returns a copy of the edges in index order.
func (n *Network) Edges() []Edge { return append([]Edge(nil), n.edges...) }

// Node returns the node with the given label.
func (n *Network) Node(label string) (Node, bool) {
	i, err := n.labels.Index(label)
	if err != nil {
		return Node{}, false
	}
	return n.nodes[i], true
}

// Index maps a node label to its index.
func (n *Network) Index(label string) (int, error) {
	return n.labels.Index(label)
}

// Model returns the cost model.
func (n *Network) Model() cost.Model { return n.model }

// Logger returns the logger the network was built with.
func (n *Network) Logger() *zap.Logger { return n.logger }

// Labels returns node labels in index order.
func (n *Network) Labels() []string { return n.labels.Labels() }

// Demand returns the per-node demand vector.
func (n *Network) Demand() []float64 {
	out := make([]float64, len(n.nodes))
	for i, nd := range n.nodes {
		out[i] = nd.Demand
	}
	return out
}

// Bounds returns the lower and upper flow bounds per edge.
func (n *Network) Bounds() (lb, ub []float64) {
	lb, ub = make([]float64, len(n.edges)), make([]float64, len(n.edges))
	for i, e := range n.edges {
		lb[i], ub[i] = e.LB, e.UB
	}
	return lb, ub
}

// Evaluate is Model().Evaluate.
func (n *Network) Evaluate(flow []float64) ([]float64, error) { return n.model.Evaluate(flow) }

// DDX is Model().DDX.
func (n *Network) DDX(flow []float64) ([]float64, error) { return n.model.DDX(flow) }
