// SPDX-License-Identifier: MIT
// Package: costnet/gaslib
//
// load.go — topology + scenario → network.Network.
//
// Mapping:
//   - every node keeps its id as label and x/y as coordinates; sources and
//     sinks are zones;
//   - every connection becomes one edge, bounded by its flowMin/flowMax
//     (absent → -Inf/+Inf);
//   - a flow nomination becomes demand, positive at an exit and negative at
//     an entry. Several nominations for one node add up.
//
// Cost: GasLib carries none, so the model is an all-zero polynomial.

package gaslib

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/config"
	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/lookup"
	"github.com/katalvlaran/costnet/network"
)

// Option customizes Load and LoadFixture.
type Option func(*settings)

type settings struct {
	name      string
	logger    *zap.Logger
	cfgLogger *zap.Logger
	prettify  bool
	configErr error
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, o := range opts {
		o(&s)
	}
	switch {
	case s.logger != nil:
	case s.cfgLogger != nil:
		s.logger = s.cfgLogger
	default:
		s.logger = zap.NewNop()
	}
	return s
}

// WithName overrides the network name, which otherwise is the topology's
// information/title.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithLogger routes load diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gaslib: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}

// WithConfig takes log_level (unless WithLogger is also given) and
// prettify from cfg. The cost fields do not apply: GasLib has no costs.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.prettify = cfg.Prettify
		var err error
		if s.cfgLogger, err = cfg.NewLogger(); err != nil {
			s.configErr = err
		}
	}
}

// Load reads a topology and a scenario (paths or inline XML) and merges
// them into one network.
func Load(netSrc, scenarioSrc string, opts ...Option) (*network.Network, error) {
	topo, err := ParseNetwork(netSrc)
	if err != nil {
		return nil, err
	}
	scn, err := ParseScenario(scenarioSrc)
	if err != nil {
		return nil, err
	}
	return Merge(topo, scn, opts...)
}

// Merge maps an already decoded topology and scenario onto the generic
// network model.
func Merge(topo *Topology, scn *Scenario, opts ...Option) (*network.Network, error) {
	s := newSettings(opts)
	if s.configErr != nil {
		return nil, fmt.Errorf("gaslib: %w", s.configErr)
	}
	name := s.name
	if name == "" {
		name = topo.Title
	}

	ids := lookup.New(len(topo.Nodes))
	nodes := make([]network.Node, len(topo.Nodes))
	for i, tn := range topo.Nodes {
		if _, err := ids.Add(tn.ID); err != nil {
			return nil, fmt.Errorf("gaslib: node: %w", err)
		}
		nodes[i] = network.Node{
			Label: tn.ID,
			X:     tn.X,
			Y:     tn.Y,
			Zone:  tn.Kind == Source || tn.Kind == Sink,
		}
	}

	nominated := 0
	if scn != nil {
		for _, nom := range scn.Nominations {
			i, err := ids.Index(nom.Node)
			if err != nil {
				return nil, fmt.Errorf("%w: scenario %q nominates %q", ErrUnknownNode, scn.ID, nom.Node)
			}
			v, ok := nom.Flow.Value()
			if !ok {
				continue
			}
			if nom.Type == Entry {
				v = -v
			}
			nodes[i].Demand += v
			nominated++
		}
	}

	edges := make([]network.Edge, len(topo.Connections))
	for i, c := range topo.Connections {
		edges[i] = network.Edge{
			From: c.From,
			To:   c.To,
			LB:   c.Props.Lookup("flowMin", math.Inf(-1)),
			UB:   c.Props.Lookup("flowMax", math.Inf(1)),
		}
	}

	n, err := network.New(nodes, edges, cost.ZeroPolynomial(len(edges)),
		network.WithName(name), network.WithLogger(s.logger), network.WithPrettify(s.prettify))
	if err != nil {
		return nil, fmt.Errorf("gaslib: %w", err)
	}

	s.logger.Debug("gaslib instance loaded",
		zap.String("name", name),
		zap.Int("nodes", n.NumNodes()),
		zap.Int("edges", n.NumEdges()),
		zap.Int("nominations", nominated),
	)
	return n, nil
}
