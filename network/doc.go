// SPDX-License-Identifier: MIT

// Package network aggregates the nodes, edges and single cost model of a
// flow network and converts it to and from the network XML dialect:
//
//	<network name="…">
//	  <nodes>
//	    <node label="1" x="0" y="0" zone="true" demand="-5"/>
//	  </nodes>
//	  <edges>
//	    <edge from="1" to="2" lb="0" ub="Inf">
//	      <cost><polynomial>3 + 8x</polynomial></cost>
//	    </edge>
//	  </edges>
//	  <metadata><costfuncs><F>a + b*x</F></costfuncs></metadata>
//	</network>
//
// zone, demand, lb and ub are optional on input (false, 0, 0 and +Inf).
// Node order fixes node indices and edge order fixes edge indices, which
// are also the row indices of every cost coefficient column.
//
// FromXML accepts a filesystem path or an in-memory document; ToXML and
// WriteFile produce a document that FromXML reads back to the same
// network. Cost ingestion is delegated to cost.FromXML and is configured
// with the options of this package (or a config.Config).
//
// Beyond I/O the package offers the linear-algebra views that solvers
// start from: the node–edge incidence matrix (dense or COO triplets), the
// weighted Laplacian A·diag(w)·Aᵀ, and a gonum multigraph export.
package network
