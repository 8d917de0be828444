// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// api.go — Build orchestrator and the shared Draft.
//
// Contract:
//   - Build resolves options once, runs constructors in order against one
//     Draft, then calls network.New with a polynomial model assembled from
//     the per-edge rows.
//   - Nodes are keyed by label; adding an existing label is a no-op that
//     returns the existing index.
//   - Same options, seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/lookup"
	"github.com/katalvlaran/costnet/network"
)

// Constructor adds topology to a Draft. Constructors validate parameters
// first and return sentinel errors; they never panic.
type Constructor func(d *Draft, cfg config) error

// Draft accumulates nodes, edges and cost rows during a Build.
type Draft struct {
	labels *lookup.Table
	nodes  []network.Node
	edges  []network.Edge
	rows   [][]float64
}

func newDraft() *Draft {
	return &Draft{labels: lookup.New(0)}
}

// NumNodes is the number of nodes added so far.
func (d *Draft) NumNodes() int { return len(d.nodes) }

// NumEdges is the number of edges added so far.
func (d *Draft) NumEdges() int { return len(d.edges) }

// addNode inserts label at (x, y) unless it already exists.
func (d *Draft) addNode(label string, x, y float64) (int, error) {
	if i, err := d.labels.Index(label); err == nil {
		return i, nil
	}
	i, err := d.labels.Add(label)
	if err != nil {
		return 0, err
	}
	d.nodes = append(d.nodes, network.Node{Label: label, X: x, Y: y})
	return i, nil
}

// addEdge appends from→to with the configured bounds and a fresh cost row.
func (d *Draft) addEdge(from, to string, cfg config) {
	d.addEdgeRow(from, to, cfg.lb, cfg.ub, cfg.costFn(cfg.rng))
}

func (d *Draft) addEdgeRow(from, to string, lb, ub float64, row []float64) {
	d.edges = append(d.edges, network.Edge{From: from, To: to, LB: lb, UB: ub})
	d.rows = append(d.rows, row)
}

// Build runs cons in order and returns the resulting network.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	cfg := newConfig(opts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	model, err := cost.NewPolynomialFromRows(d.rows)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}
	n, err := network.New(d.nodes, d.edges, model, network.WithName(cfg.name), network.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	cfg.logger.Debug("network built",
		zap.String("name", cfg.name),
		zap.Int("nodes", n.NumNodes()),
		zap.Int("edges", n.NumEdges()),
		zap.Int("degree", model.Degree()),
	)
	return n, nil
}

// Demand adds d to the demand of an existing node.
func Demand(label string, demand float64) Constructor {
	return func(d *Draft, _ config) error {
		i, err := d.labels.Index(label)
		if err != nil {
			return fmt.Errorf("Demand: %q: %w", label, ErrUnknownNode)
		}
		d.nodes[i].Demand += demand
		return nil
	}
}

// Zone marks existing nodes as zones.
func Zone(labels ...string) Constructor {
	return func(d *Draft, _ config) error {
		for _, l := range labels {
			i, err := d.labels.Index(l)
			if err != nil {
				return fmt.Errorf("Zone: %q: %w", l, ErrUnknownNode)
			}
			d.nodes[i].Zone = true
		}
		return nil
	}
}
