// Package costnet models flow networks whose edges carry parametrized cost
// functions, and reads and writes them as XML.
//
// What is in the box:
//
//   - Cost models: per-edge Polynomial, Symbolic (one formula, per-edge
//     coefficients) and PiecewiseQuadratic costs, each with a vectorized
//     Evaluate and a derivative kernel DDX.
//   - Ingestion: sparse, partially specified <cost> blocks are detected,
//     broadcast to every edge and defaulted.
//   - Round trip: network.FromXML and Network.ToXML reproduce a network
//     exactly, coefficients included.
//   - GasLib: topology and nomination-scenario files merged into one
//     network, with a couple of embedded instances.
//   - Linear algebra views: incidence matrix, weighted Laplacian and a
//     gonum multigraph export.
//
// Packages:
//
//	polynomial/ — "3 + 8x + 16x^2" ↔ coefficient rows
//	expression/ — symbolic formulas: parse, differentiate, compile, cache
//	cost/       — cost models, XML ingestion and serialization
//	network/    — Node, Edge, Network; XML round trip; matrices
//	gaslib/     — GasLib topology + scenario reader, fixtures
//	builder/    — synthetic networks (Path, Cycle, Star, Grid, Braess, …)
//	config/     — YAML ingestion settings, validation, zap logger
//	lookup/     — label ↔ dense index table
//	xmltree/    — etree helpers shared by the readers
//
// Quick example, the Braess network:
//
//	      a
//	   ↗  |  ↘
//	 s    |    t
//	   ↘  ↓  ↗
//	      b
//
//	n, _ := builder.Build(nil, builder.Braess())
//	d, _ := n.DDX([]float64{4, 2, 2, 4, 2})
//
//	go get github.com/katalvlaran/costnet
package costnet
