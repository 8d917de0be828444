// SPDX-License-Identifier: MIT

package network

import "errors"

// Sentinel errors. Lower-level failures (lookup, xmltree, cost) are wrapped
// with %w and remain matchable with errors.Is.
var (
	// ErrNoNetwork reports a document without a <network> element.
	ErrNoNetwork = errors.New("network: no <network> element")

	// ErrMissingAttr reports a required attribute that is absent or empty.
	ErrMissingAttr = errors.New("network: missing attribute")

	// ErrUnknownNode reports an edge endpoint that names no node.
	ErrUnknownNode = errors.New("network: edge endpoint is not a node")

	// ErrBounds reports lb > ub or a NaN bound.
	ErrBounds = errors.New("network: invalid flow bounds")

	// ErrEdgeCount reports a cost model whose column length differs from
	// the number of edges.
	ErrEdgeCount = errors.New("network: cost model does not match edge count")

	// ErrUnknownFormat reports an unrecognized matrix return format.
	ErrUnknownFormat = errors.New("network: unknown matrix format")

	// ErrEmptyNetwork reports a matrix request on a network with no nodes
	// or no edges.
	ErrEmptyNetwork = errors.New("network: network has no nodes or no edges")

	// ErrWeightLength reports a weight vector whose length is not NumEdges.
	ErrWeightLength = errors.New("network: weight length mismatch")
)
