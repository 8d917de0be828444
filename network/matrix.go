// SPDX-License-Identifier: MIT
// Package: costnet/network
//
// matrix.go — node–edge incidence matrix and weighted Laplacian.
//
// Sign convention: column e holds −1 at row Source(e) and +1 at row
// Target(e); a self-loop column sums to 0. Hence A·f is the net inflow
// per node and every column sums to zero.
//
// Complexity:
//   - IncidenceMatrix: O(N·M) for FormatDense, O(M) for FormatTriplet.
//   - Laplacian: O(N·M + N²·M) with gonum's dense multiply.

package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	srcMark = -1.0
	dstMark = +1.0
)

// Format selects the concrete matrix type returned by IncidenceMatrix.
type Format int

const (
	// FormatDense returns *mat.Dense.
	FormatDense Format = iota
	// FormatTriplet returns *Triplet (coordinate list).
	FormatTriplet
)

// ParseFormat maps "dense" or "triplet"/"coo" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "dense":
		return FormatDense, nil
	case "triplet", "coo":
		return FormatTriplet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Triplet is a sparse matrix in coordinate form. Entry k is V[k] at
// (I[k], J[k]); repeated coordinates add up. It implements mat.Matrix.
type Triplet struct {
	rows, cols int
	I, J       []int
	V          []float64
}

// Dims implements mat.Matrix.
func (t *Triplet) Dims() (r, c int) { return t.rows, t.cols }

// At implements mat.Matrix. It scans the entries: O(nnz).
func (t *Triplet) At(i, j int) float64 {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	v := 0.0
	for k := range t.V {
		if t.I[k] == i && t.J[k] == j {
			v += t.V[k]
		}
	}
	return v
}

// T implements mat.Matrix.
func (t *Triplet) T() mat.Matrix { return mat.Transpose{Matrix: t} }

// NNZ returns the number of stored entries.
func (t *Triplet) NNZ() int { return len(t.V) }

// Dense expands the triplets into a *mat.Dense.
func (t *Triplet) Dense() *mat.Dense {
	d := mat.NewDense(t.rows, t.cols, nil)
	for k, v := range t.V {
		d.Set(t.I[k], t.J[k], d.At(t.I[k], t.J[k])+v)
	}
	return d
}

// IncidenceMatrix returns the NumNodes × NumEdges incidence matrix in the
// requested format.
func (n *Network) IncidenceMatrix(format Format) (mat.Matrix, error) {
	switch format {
	case FormatDense:
		if len(n.nodes) == 0 || len(n.edges) == 0 {
			return nil, ErrEmptyNetwork
		}
		return n.denseIncidence(), nil
	case FormatTriplet:
		if len(n.nodes) == 0 || len(n.edges) == 0 {
			return nil, ErrEmptyNetwork
		}
		t := &Triplet{rows: len(n.nodes), cols: len(n.edges)}
		for _, e := range n.edges {
			if e.Source == e.Target {
				continue
			}
			t.I = append(t.I, e.Source, e.Target)
			t.J = append(t.J, e.Index, e.Index)
			t.V = append(t.V, srcMark, dstMark)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

func (n *Network) denseIncidence() *mat.Dense {
	a := mat.NewDense(len(n.nodes), len(n.edges), nil)
	for _, e := range n.edges {
		if e.Source == e.Target {
			continue
		}
		a.Set(e.Source, e.Index, srcMark)
		a.Set(e.Target, e.Index, dstMark)
	}
	return a
}

// Laplacian returns A·diag(w)·Aᵀ for the incidence matrix A. With the
// lap_weight column of a piecewise-quadratic model as w this is the
// weighted graph Laplacian of an electrical network.
func (n *Network) Laplacian(weights []float64) (*mat.Dense, error) {
	if len(weights) != len(n.edges) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWeightLength, len(weights), len(n.edges))
	}
	if len(n.nodes) == 0 || len(n.edges) == 0 {
		return nil, ErrEmptyNetwork
	}
	a := n.denseIncidence()
	w := mat.NewDiagDense(len(weights), append([]float64(nil), weights...))

	var aw, l mat.Dense
	aw.Mul(a, w)
	l.Mul(&aw, a.T())
	return &l, nil
}
