// SPDX-License-Identifier: MIT

// Package gaslib reads GasLib instances (https://gaslib.zib.de) into a
// network.Network.
//
// A GasLib instance is two XML files:
//
//   - the topology (.net): a <network> with <framework:nodes> holding
//     <source>, <sink> and <innode> elements and <framework:connections>
//     holding <pipe>, <shortPipe>, <valve>, <compressorStation>,
//     <resistor> and <controlValve> elements; physical properties are
//     children of the form <length value="55" unit="km"/>;
//   - a nomination scenario (.scn): <boundaryValue><scenario> with one
//     <node type="entry|exit" id="…"> per boundary node carrying <flow>
//     and <pressure> bounds.
//
// ParseNetwork and ParseScenario decode the two files as they are. Load
// merges them into the generic model: sources and sinks become zone nodes,
// connections become edges bounded by flowMin/flowMax, and flow
// nominations become node demand (positive at exits, negative at
// entries). GasLib carries no cost data, so the network gets an all-zero
// polynomial cost.
//
// A few small instances are embedded; LoadFixture materializes one as a
// temporary file pair, loads it, and always removes the files again.
package gaslib
