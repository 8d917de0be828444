// SPDX-License-Identifier: MIT

// Package cost models per-edge cost functions of a flow network and reads
// them from, and writes them to, the network XML dialect.
//
// A network carries exactly one Model, a closed sum over three variants:
//
//	*Polynomial          F(f) = Σ c_i f^i, per-edge coefficients c0…ck
//	*Symbolic            one network-wide formula F(x; a, b, c, …),
//	                     per-edge coefficient values
//	*PiecewiseQuadratic  two quadratic regimes split at a per-edge
//	                     breakpoint tau (electrical networks)
//
// Every Model evaluates a flow vector (one value per edge) with Evaluate
// and returns the marginal cost with DDX; the latter is what equilibrium
// solvers consume. Models are immutable after construction, so both calls
// are safe from many goroutines at once.
//
// # Coefficient stores
//
// Each variant keeps a fixed-schema struct of dense columns, one value per
// edge (PolynomialCoefficients is a slice of columns c0…ck,
// SymbolicCoefficients has A, B, C plus Extra, PiecewiseCoefficients has
// A, B, Tau, LapWeight). Coefficients() exposes a read-only, by-name view
// for generic callers; the XML layer uses the same names as tags.
//
// # Ingestion
//
// FromXML walks <edges>/<edge> in document order and reads each
// <cost>/<variant> block. Missing blocks are filled with the variant's
// defaults when WithDefaultEdgeCost(true) is set and are a
// *MissingCostError otherwise. Without WithKind the first edge carrying
// cost data decides the variant for the whole network; a later edge with a
// different variant is an *AmbiguousVariantError.
//
// # Serialization
//
// AddToTree writes one edge's coefficients under <edge>/<cost>. With
// overwrite=false it appends (existing values stay in the document and
// the reader takes the last occurrence); with overwrite=true it rewrites
// existing values in place.
package cost
