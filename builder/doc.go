// SPDX-License-Identifier: MIT

// Package builder assembles synthetic flow networks for tests, benchmarks
// and examples.
//
// A build is one call to Build with a list of options and an ordered list
// of Constructors. Each constructor adds nodes and directed edges to a
// shared draft; nodes are keyed by label, so constructors that reuse a
// label (Path(4) followed by Demand("0", -5), for instance) compose.
// Build then attaches a polynomial cost model, one row per edge, and
// validates everything through network.New.
//
// Topologies:
//
//   - Path(n):          0→1→…→n-1.
//   - Cycle(n):         a path closed by n-1→0.
//   - Star(n):          hub "center" with two-way spokes to n-1 leaves.
//   - Grid(rows, cols): "r,c" cells with two-way links to right and bottom
//     neighbours; X=c, Y=r.
//   - Complete(n):      every ordered pair of distinct nodes.
//   - RandomSparse(n, p): each ordered pair with probability p (needs a
//     seeded RNG unless p is 0 or 1).
//   - Braess():         the four-node Braess paradox road network with its
//     classic linear costs and a demand of 6.
//
// Vertex IDs come from an IDFn (WithIDScheme and its shorthands), edge
// costs from a CostFn (WithCostFn and its shorthands), bounds from
// WithCapacity. Option constructors panic on meaningless input;
// constructors return sentinel errors and never panic.
package builder
