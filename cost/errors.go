// SPDX-License-Identifier: MIT

package cost

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to one of these.
var (
	// ErrFlowLength reports a flow vector whose length differs from NumEdges.
	ErrFlowLength = errors.New("cost: flow length mismatch")

	// ErrColumnLength reports coefficient columns of unequal length.
	ErrColumnLength = errors.New("cost: coefficient columns differ in length")

	// ErrNonFinite reports a NaN or infinite value where a finite one is required.
	ErrNonFinite = errors.New("cost: non-finite coefficient")

	// ErrUnknownVariant reports an unrecognized variant name or tag.
	ErrUnknownVariant = errors.New("cost: unknown cost variant")

	// ErrUnknownCoefficient reports a coefficient tag the variant does not define.
	ErrUnknownCoefficient = errors.New("cost: unknown coefficient")

	// ErrMissingCost is matched by every *MissingCostError.
	ErrMissingCost = errors.New("cost: edge has no cost block")

	// ErrAmbiguousVariant is matched by every *AmbiguousVariantError.
	ErrAmbiguousVariant = errors.New("cost: edges mix cost variants")

	// ErrNoExpression reports a symbolic model without a formula.
	ErrNoExpression = errors.New("cost: symbolic cost needs a formula")

	// ErrEdgeRange reports an edge index outside [0, NumEdges).
	ErrEdgeRange = errors.New("cost: edge index out of range")
)

// MissingCostError identifies an edge that lacks the expected cost block
// while default edge costs are disabled.
type MissingCostError struct {
	Edge     int    // edge index in document order
	From, To string // endpoint labels as written on the edge
	Kind     Kind   // variant that was looked for
}

func (e *MissingCostError) Error() string {
	return fmt.Sprintf("cost: edge %d (%s→%s) has no <%s> cost block", e.Edge, e.From, e.To, e.Kind.Tag())
}

// Unwrap lets errors.Is(err, ErrMissingCost) succeed.
func (e *MissingCostError) Unwrap() error { return ErrMissingCost }

// AmbiguousVariantError reports an edge whose cost block uses a different
// variant than the one detected on an earlier edge.
type AmbiguousVariantError struct {
	Edge     int    // first offending edge
	From, To string // its endpoint labels
	Want     Kind   // variant detected earlier
	Got      Kind   // variant found on this edge
}

func (e *AmbiguousVariantError) Error() string {
	return fmt.Sprintf("cost: edge %d (%s→%s) uses <%s> but the network uses <%s>",
		e.Edge, e.From, e.To, e.Got.Tag(), e.Want.Tag())
}

// Unwrap lets errors.Is(err, ErrAmbiguousVariant) succeed.
func (e *AmbiguousVariantError) Unwrap() error { return ErrAmbiguousVariant }
