// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// options.go — functional options for FromXML.
//
// Option constructors panic on meaningless input (invalid Kind, empty
// formula, nil logger); FromXML itself only returns errors.

package cost

import "go.uber.org/zap"

// Option customizes FromXML.
type Option func(*ingestConfig)

type ingestConfig struct {
	defaultEdgeCost bool
	kind            Kind
	expression      string
	logger          *zap.Logger
}

func newIngestConfig(opts []Option) ingestConfig {
	cfg := ingestConfig{kind: KindAuto, logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithDefaultEdgeCost controls edges without a cost block: true fills them
// with the variant defaults, false (the default) makes FromXML fail with
// a *MissingCostError.
func WithDefaultEdgeCost(on bool) Option {
	return func(c *ingestConfig) { c.defaultEdgeCost = on }
}

// WithKind fixes the variant instead of detecting it. KindAuto restores
// detection. Panics on a value outside the declared constants.
func WithKind(k Kind) Option {
	if !k.Valid() {
		panic("cost: WithKind(invalid)")
	}
	return func(c *ingestConfig) { c.kind = k }
}

// WithExpression supplies the symbolic formula, taking precedence over the
// one declared in the document metadata. Panics on "".
func WithExpression(formula string) Option {
	if formula == "" {
		panic("cost: WithExpression(\"\")")
	}
	return func(c *ingestConfig) { c.expression = formula }
}

// WithLogger routes ingestion diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cost: WithLogger(nil)")
	}
	return func(c *ingestConfig) { c.logger = l }
}
