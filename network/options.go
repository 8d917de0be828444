// SPDX-License-Identifier: MIT

package network

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/config"
	"github.com/katalvlaran/costnet/cost"
)

// Option customizes New and the FromXML family.
type Option func(*settings)

type settings struct {
	name      string
	logger    *zap.Logger
	cfgLogger *zap.Logger // from WithConfig; loses to WithLogger
	prettify  bool
	costOpts  []cost.Option
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

// ingest returns the cost options with the logger appended last.
func (s settings) ingest() []cost.Option {
	out := append([]cost.Option(nil), s.costOpts...)
	return append(out, cost.WithLogger(s.logger))
}

// WithName sets the network name written to <network name="…">. FromXML
// uses it only when the document carries no name.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithDefaultEdgeCost is cost.WithDefaultEdgeCost for FromXML.
func WithDefaultEdgeCost(on bool) Option {
	return func(s *settings) { s.costOpts = append(s.costOpts, cost.WithDefaultEdgeCost(on)) }
}

// WithKind is cost.WithKind for FromXML. Panics on an invalid Kind.
func WithKind(k cost.Kind) Option {
	o := cost.WithKind(k)
	return func(s *settings) { s.costOpts = append(s.costOpts, o) }
}

// WithExpression is cost.WithExpression for FromXML. Panics on "".
func WithExpression(formula string) Option {
	o := cost.WithExpression(formula)
	return func(s *settings) { s.costOpts = append(s.costOpts, o) }
}

// WithLogger routes diagnostics of this package and of cost ingestion to
// l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}

// WithPrettify sets whether Save and XML indent their output.
func WithPrettify(on bool) Option {
	return func(s *settings) { s.prettify = on }
}

// WithConfig applies every field of cfg: the ingestion fields (variant,
// default_edge_cost, expression), prettify as WithPrettify, and log_level
// through cfg.NewLogger unless WithLogger is also given. An invalid
// variant or level surfaces as an error from the FromXML call.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.prettify = cfg.Prettify
		opts, err := cfg.CostOptions()
		if err != nil {
			s.configErr = err
			return
		}
		s.costOpts = append(s.costOpts, opts...)
		if s.cfgLogger, err = cfg.NewLogger(); err != nil {
			s.configErr = err
		}
	}
}
